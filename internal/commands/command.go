package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeToggle    Type = "toggle"
	TypeThreshold Type = "threshold"
	TypeFreeze    Type = "freeze"
	TypeTheme     Type = "theme"
	TypeGoto      Type = "goto"
	TypePeriod    Type = "period"
	TypeReset     Type = "reset"
	TypeExport    Type = "export"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ToggleArgs struct {
	TaskID string
	// Date is an optional YYYY-MM-DD key; empty means today.
	Date string
}

type ThresholdArgs struct {
	Percent int
}

type FreezeArgs struct {
	Enabled bool
}

type ThemeArgs struct {
	Name string
}

type GotoArgs struct {
	Date string
}

type PeriodArgs struct {
	Name string
}

type ExportArgs struct {
	Path string
}

type Command struct {
	Type      Type
	Raw       string
	Toggle    *ToggleArgs
	Threshold *ThresholdArgs
	Freeze    *FreezeArgs
	Theme     *ThemeArgs
	Goto      *GotoArgs
	Period    *PeriodArgs
	Export    *ExportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeToggle:
		return parseToggle(input, args)
	case TypeThreshold:
		return parseThreshold(input, args)
	case TypeFreeze:
		return parseFreeze(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypePeriod:
		return parsePeriod(input, args)
	case TypeReset:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset takes no arguments"}
		}
		return Command{Type: TypeReset, Raw: input}, nil
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task id"}
	}
	if len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle takes a task id and an optional date"}
	}
	out := ToggleArgs{TaskID: args[0]}
	if len(args) == 2 {
		out.Date = args[1]
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &out}, nil
}

func parseThreshold(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "threshold requires a percentage"}
	}
	pct, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
	if err != nil || pct < 0 || pct > 100 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid threshold: %s", args[0])}
	}
	return Command{Type: TypeThreshold, Raw: raw, Threshold: &ThresholdArgs{Percent: pct}}, nil
}

func parseFreeze(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "freeze requires on or off"}
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return Command{Type: TypeFreeze, Raw: raw, Freeze: &FreezeArgs{Enabled: true}}, nil
	case "off":
		return Command{Type: TypeFreeze, Raw: raw, Freeze: &FreezeArgs{Enabled: false}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid freeze value: %s", args[0])}
	}
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires dark or light"}
	}
	name := strings.ToLower(args[0])
	if name != "dark" && name != "light" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid theme: %s", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date (YYYY-MM-DD or today)"}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: strings.ToLower(args[0])}}, nil
}

func parsePeriod(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "period requires days, weeks, months or years"}
	}
	name := strings.ToLower(args[0])
	switch name {
	case "days", "weeks", "months", "years":
		return Command{Type: TypePeriod, Raw: raw, Period: &PeriodArgs{Name: name}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid period: %s", args[0])}
	}
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a file path"}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: args[0]}}, nil
}
