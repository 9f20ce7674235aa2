package model

// DefaultSchedule is the bundled routine installed on first run and restored
// by a schedule reset.
func DefaultSchedule() Schedule {
	return Schedule{Blocks: []RoutineBlock{
		{
			ID: "block-1", Name: "Morning Reset", StartTime: "06:30", EndTime: "07:10", Order: 0,
			Tasks: []Task{
				{ID: "t1-1", Title: "Wake up at 6:30", MustDo: true, Order: 0},
				{ID: "t1-2", Title: "Black coffee", Order: 1},
				{ID: "t1-3", Title: "Read 5 pages", Order: 2},
				{ID: "t1-4", Title: "Oil pulling", Order: 3},
				{ID: "t1-5", Title: "Brush teeth", Order: 4},
				{ID: "t1-6", Title: "Shower", Order: 5},
			},
		},
		{
			ID: "block-2", Name: "Skills Sprint", StartTime: "07:10", EndTime: "08:20", Order: 1,
			Tasks: []Task{
				{ID: "t2-1", Title: "English speaking practice", Order: 0},
				{ID: "t2-2", Title: "Sales call practice", Order: 1},
				{ID: "t2-3", Title: "Objection handling", Order: 2},
			},
		},
		{
			ID: "block-3", Name: "Gym", StartTime: "08:30", EndTime: "10:30", Order: 2,
			Tasks: []Task{
				{ID: "t3-1", Title: "Leave for gym", Order: 0},
				{ID: "t3-2", Title: "Workout", MustDo: true, Order: 1},
				{ID: "t3-3", Title: "Stretching/cooldown", Order: 2},
			},
		},
		{
			ID: "block-4", Name: "Post Gym + Meals", StartTime: "10:30", EndTime: "12:30", Order: 3,
			Tasks: []Task{
				{ID: "t4-1", Title: "Shower + get fresh", Order: 0},
				{ID: "t4-2", Title: "Breakfast / post-workout", Order: 1},
				{ID: "t4-3", Title: "Lunch finished by 12:30", Order: 2},
			},
		},
		{
			ID: "block-5", Name: "Mandarin", StartTime: "11:20", EndTime: "12:00", Order: 4,
			Tasks: []Task{
				{ID: "t5-1", Title: "Mandarin vocab", Order: 0},
				{ID: "t5-2", Title: "Listening + shadowing", Order: 1},
			},
		},
		{
			ID: "block-6", Name: "Business", StartTime: "12:30", EndTime: "18:00", Order: 5,
			Tasks: []Task{
				{ID: "t6-1", Title: "Business with father", MustDo: true, Order: 0},
				{ID: "t6-2", Title: "Follow-ups + payments", Order: 1},
				{ID: "t6-3", Title: "5 new outreach msgs", Order: 2},
				{ID: "t6-4", Title: "2 sales calls", Order: 3},
				{ID: "t6-5", Title: "Vendor coordination", Order: 4},
			},
		},
		{
			ID: "block-7", Name: "Content Creation", StartTime: "18:00", EndTime: "19:30", Order: 6,
			Tasks: []Task{
				{ID: "t7-1", Title: "Record content", MustDo: true, Order: 0},
				{ID: "t7-2", Title: "Post / schedule", Order: 1},
				{ID: "t7-3", Title: "Reply to comments", Order: 2},
			},
		},
		{
			ID: "block-8", Name: "Dinner", StartTime: "19:30", EndTime: "20:15", Order: 7,
			Tasks: []Task{
				{ID: "t8-1", Title: "Dinner", Order: 0},
			},
		},
		{
			ID: "block-9", Name: "Editing Focus", StartTime: "20:15", EndTime: "21:45", Order: 8,
			Tasks: []Task{
				{ID: "t9-1", Title: "Edit content", Order: 0},
				{ID: "t9-2", Title: "Upload/export", Order: 1},
			},
		},
		{
			ID: "block-10", Name: "Walk", StartTime: "22:00", EndTime: "22:30", Order: 9,
			Tasks: []Task{
				{ID: "t10-1", Title: "Walk at 10:00 pm", MustDo: true, Order: 0},
			},
		},
		{
			ID: "block-11", Name: "Wind Down", StartTime: "22:30", EndTime: "23:30", Order: 10,
			Tasks: []Task{
				{ID: "t11-1", Title: "Chill / fun", Order: 0},
				{ID: "t11-2", Title: "Sleep by 11:30", MustDo: true, Order: 1},
			},
		},
	}}
}
