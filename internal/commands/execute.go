package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Toggle    func(ToggleArgs) (Result, error)
	Threshold func(ThresholdArgs) (Result, error)
	Freeze    func(FreezeArgs) (Result, error)
	Theme     func(ThemeArgs) (Result, error)
	Goto      func(GotoArgs) (Result, error)
	Period    func(PeriodArgs) (Result, error)
	Reset     func() (Result, error)
	Export    func(ExportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeThreshold:
		if handlers.Threshold == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "threshold handler not configured"}
		}
		return handlers.Threshold(*cmd.Threshold)
	case TypeFreeze:
		if handlers.Freeze == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "freeze handler not configured"}
		}
		return handlers.Freeze(*cmd.Freeze)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypePeriod:
		if handlers.Period == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "period handler not configured"}
		}
		return handlers.Period(*cmd.Period)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export(*cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
