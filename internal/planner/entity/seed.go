package entity

// DefaultSettings builds the settings cloned into every new project. The
// configured flat defaults become single-category pools so the derived sums
// reproduce them.
func DefaultSettings(costPerDay, baseCogs, cogsMultiplier float64) Settings {
	return Settings{
		OpexCategories: []CostCategory{
			{ID: NewID(), Name: "Equipo de desarrollo", Amount: costPerDay},
		},
		CogsCategories: []CostCategory{
			{ID: NewID(), Name: "Infraestructura", Amount: baseCogs},
		},
		CogsMultiplier: cogsMultiplier,
	}
}

// DefaultRoadmap is the three-bucket baseline every new project starts with.
func DefaultRoadmap() Roadmap {
	return Roadmap{
		{ID: NewID(), Name: "v1.0: Foundation", Color: "#0073ea", Limit: 100, Features: []Feature{}},
		{ID: NewID(), Name: "v1.5: Optimization", Color: "#a25ddc", Limit: 120, Features: []Feature{}},
		{ID: NewID(), Name: "v2.0: Scaling & Vision", Color: "#00c875", Limit: 150, Features: []Feature{}},
	}
}

// DemoProject is the sample portfolio entry seeded on first boot so a fresh
// install has something to show.
func DemoProject(settings Settings) *Project {
	return &Project{
		ID:       NewID(),
		Name:     "App Móvil Core",
		Settings: SettingsDoc(settings),
		Revision: 1,
		Roadmap: RoadmapDoc(Roadmap{
			{
				ID: NewID(), Name: "v1.0: Foundation (MVP)", Color: "#0073ea", Limit: 100,
				Features: []Feature{
					{ID: NewID(), Title: "Autenticación OAuth2", EffortMin: 15, EffortMax: 30, Impact: 5, Complexity: 6,
						Category: "Tech", DevStatus: StatusDone, Assignee: "Jorge", StartDate: "2023-10-01", EndDate: "2023-10-15"},
					{ID: NewID(), Title: "Dashboard Principal", EffortMin: 30, EffortMax: 50, Impact: 8, Complexity: 3,
						Category: "UI", DevStatus: StatusWorking, Assignee: "Mario", StartDate: "2023-10-10", EndDate: "2023-11-20"},
					{ID: NewID(), Title: "Integración de API Core", EffortMin: 20, EffortMax: 40, Impact: 9, Complexity: 8,
						Category: "Backend", DevStatus: StatusDesign, Assignee: "Alberto", StartDate: "2023-11-01", EndDate: "2023-11-30"},
				},
			},
			{
				ID: NewID(), Name: "v1.5: Optimization", Color: "#a25ddc", Limit: 120,
				Features: []Feature{
					{ID: NewID(), Title: "Analítica Avanzada", EffortMin: 40, EffortMax: 60, Impact: 9, Complexity: 7,
						Category: "Business", DevStatus: StatusPrototype, Assignee: "Andrea", StartDate: "2023-12-01", EndDate: "2024-01-30"},
					{ID: NewID(), Title: "Notificaciones Push", EffortMin: 20, EffortMax: 35, Impact: 4, Complexity: 5,
						Category: "UX", DevStatus: StatusNotStarted, Assignee: "Fabián", StartDate: "2024-01-15", EndDate: "2024-02-15"},
				},
			},
			{
				ID: NewID(), Name: "v2.0: Scaling & Vision", Color: "#00c875", Limit: 150,
				Features: []Feature{
					{ID: NewID(), Title: "Motor de IA Predictiva", EffortMin: 80, EffortMax: 120, Impact: 10, Complexity: 10,
						Category: "Vision", DevStatus: StatusNotStarted, Assignee: "Daniel", StartDate: "2024-03-01", EndDate: "2024-06-30"},
					{ID: NewID(), Title: "Multi-idioma (Mercado Asia)", EffortMin: 50, EffortMax: 80, Impact: 10, Complexity: 6,
						Category: "Global", DevStatus: StatusNotStarted, Assignee: "Jorge", StartDate: "2024-05-01", EndDate: "2024-07-30"},
				},
			},
		}),
	}
}
