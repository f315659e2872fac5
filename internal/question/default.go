package question

// Default returns the built-in question set.
func Default() Spec {
	return Spec{
		Version: 1,
		Questions: []Question{
			{
				ID:           "engine",
				Prompt:       "What is the engine displacement of the latest Suzuki Swift?",
				Options:      []string{"1.0L", "1.2L", "1.4L", "1.6L"},
				CorrectIndex: 1,
				Points:       10,
			},
			{
				ID:           "transmission",
				Prompt:       "Which transmission types are available in the Suzuki Swift?",
				Options:      []string{"Manual", "Automatic", "CVT", "All of the above"},
				CorrectIndex: 3,
				Points:       10,
			},
			{
				ID:           "horsepower",
				Prompt:       "What is the maximum horsepower of the Suzuki Swift Sport?",
				Options:      []string{"100hp", "125hp", "150hp", "175hp"},
				CorrectIndex: 2,
				Points:       10,
			},
			{
				ID:           "mileage",
				Prompt:       "What is the fuel efficiency (mileage) of the Suzuki Swift?",
				Options:      []string{"20 MPG", "25 MPG", "30 MPG", "35 MPG"},
				CorrectIndex: 3,
				Points:       10,
			},
			{
				ID:           "safety",
				Prompt:       "Which safety feature is available in the Suzuki Swift?",
				Options:      []string{"ABS", "Airbags", "ESP", "All of the above"},
				CorrectIndex: 3,
				Points:       10,
			},
			{
				ID:           "cargo",
				Prompt:       "What is the maximum cargo capacity of the Suzuki Swift?",
				Options:      []string{"10 cubic feet", "15 cubic feet", "20 cubic feet", "25 cubic feet"},
				CorrectIndex: 1,
				Points:       10,
			},
			{
				ID:           "infotainment",
				Prompt:       "Which trim level of the Suzuki Swift includes a touchscreen infotainment system?",
				Options:      []string{"GL", "GLX", "Sport", "RS"},
				CorrectIndex: 2,
				Points:       10,
			},
			{
				ID:           "price",
				Prompt:       "What is the starting price of the Suzuki Swift?",
				Options:      []string{"$10,000", "$15,000", "$20,000", "$25,000"},
				CorrectIndex: 1,
				Points:       10,
			},
		},
	}
}
