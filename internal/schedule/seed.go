package schedule

// SeedMembers returns the built-in team roster.
func SeedMembers() []TeamMember {
	return []TeamMember{
		{ID: 1, Name: "Alex Johnson", Color: "#F5A623"},
		{ID: 2, Name: "Sarah Wilson", Color: "#9AE095"},
		{ID: 3, Name: "Mike Davis", Color: "#74EBE1"},
		{ID: 4, Name: "Emma Brown", Color: "#9EE1FF"},
		{ID: 5, Name: "Tom Garcia", Color: "#A0C6FF"},
		{ID: 6, Name: "Lisa Miller", Color: "#A0FFB5"},
		{ID: 7, Name: "John Taylor", Color: "#FFA0F9"},
		{ID: 8, Name: "Amy Anderson", Color: "#FFE1A0"},
		{ID: 9, Name: "Chris Moore", Color: "#FFA0A0"},
		{ID: 10, Name: "Kate White", Color: "#C0A0FF"},
		{ID: 11, Name: "David Lee", Color: "#FFFFA0"},
	}
}

// SeedAppointments returns the built-in appointments. The display labels
// are kept as shipped, including entries whose labels drift from their
// slot position.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID: "1", ClientName: "Hello",
			Time: "10:00 am - 12:30 am", StartTime: "10:00 am", EndTime: "10:30 am",
			StartHour: 4, Duration: 4, Status: StatusCompleted, Member: 1,
			Description: "Website maintenance",
		},
		{
			ID: "2", ClientName: "TechStart Inc",
			Time: "8:00 am - 8:30 am", StartTime: "8:00 am", EndTime: "8:30 am",
			StartHour: 2, Duration: 0.5, Status: StatusCompleted, Member: 2,
			Description: "System setup consultation",
		},
		{
			ID: "3", ClientName: "Global Solutions",
			Time: "9:00 am - 9:30 am", StartTime: "9:00 am", EndTime: "9:30 am",
			StartHour: 3, Duration: 0.5, Status: StatusActive, Member: 3,
			Description: "Network security review",
		},
		{
			ID: "4", ClientName: "Digital Media Co",
			Time: "11:00 am - 11:30 am", StartTime: "11:00 am", EndTime: "11:30 am",
			StartHour: 5, Duration: 0.5, Status: StatusActive, Member: 4,
			Description: "Content management system",
		},
		{
			ID: "5", ClientName: "Finance Plus",
			Time: "1:00 pm - 1:45 pm", StartTime: "1:00 pm", EndTime: "1:45 pm",
			StartHour: 7, Duration: 0.75, Status: StatusCompleted, Member: 5,
			Description: "Database migration",
		},
		{
			ID: "6", ClientName: "Marketing Hub",
			Time: "12:00 pm - 12:30 pm", StartTime: "12:00 pm", EndTime: "12:30 pm",
			StartHour: 6, Duration: 0.5, Status: StatusPending, Member: 6,
			Description: "Analytics setup",
		},
		{
			ID: "7", ClientName: "Retail Chain",
			Time: "7:00 am - 7:30 am", StartTime: "7:00 am", EndTime: "7:30 am",
			StartHour: 1, Duration: 0.5, Status: StatusCompleted, Member: 7,
			Description: "POS system integration",
		},
		{
			ID: "8", ClientName: "Tech Solutions",
			Time: "3:00 pm - 4:00 pm", StartTime: "3:00 pm", EndTime: "4:00 pm",
			StartHour: 9, Duration: 1, Status: StatusPending, Member: 8,
			Description: "Cloud migration planning",
		},
		{
			ID: "9", ClientName: "Healthcare Group",
			Time: "4:30 pm - 5:15 pm", StartTime: "4:30 pm", EndTime: "5:15 pm",
			StartHour: 10, Duration: 0.75, Status: StatusActive, Member: 9,
			Description: "System security audit",
		},
		{
			ID: "10", ClientName: "Education Corp",
			Time: "5:30 pm - 6:00 pm", StartTime: "5:30 pm", EndTime: "6:00 pm",
			StartHour: 11, Duration: 0.5, Status: StatusPending, Member: 10,
			Description: "Learning management system",
		},
	}
}

// SeedJobs returns the built-in job list.
func SeedJobs() []Job {
	return []Job{
		{
			ID: "1", Name: "Cameron Williamson",
			Address:  "4140 Parker Rd, Allentown, New Mexico 31134",
			JobID:    "JOB106731",
			Priority: Ptr(PriorityHigh), EstimatedDuration: Ptr(2.0),
		},
		{
			ID: "2", Name: "Brooklyn Simmons",
			Address:  "2715 Ash Dr. San Jose, South Dakota 83475",
			JobID:    "JOB106732",
			Priority: Ptr(PriorityMedium), EstimatedDuration: Ptr(1.5),
		},
		{
			ID: "3", Name: "Leslie Alexander",
			Address:  "6391 Elgin St. Celina, Delaware 10299",
			JobID:    "JOB106733",
			Priority: Ptr(PriorityLow), EstimatedDuration: Ptr(1.0),
		},
		{
			ID: "4", Name: "Jerome Bell",
			Address:        "8502 Preston Rd. Inglewood, Maine 98380",
			JobID:          "JOB106734",
			AssignedMember: Ptr(3),
			Priority:       Ptr(PriorityMedium), EstimatedDuration: Ptr(3.0),
		},
	}
}
