package model

// DemoProducts returns the built-in catalog used as a read fallback when the
// store is unreachable and as seed data for a fresh project.
func DemoProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Vinyl Window",
			Description: "High-quality double-glazed window with excellent thermal insulation properties.",
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=500&q=80",
			Category:    "vinyl",
			Features: []string{
				"Energy efficient double glazing",
				"UV protection coating",
				"Soundproof design",
				"Easy maintenance",
				"Lifetime warranty",
			},
			Specifications: map[string]string{
				"Material":        "Vinyl/PVC",
				"Glass Type":      "Double glazed, Low-E",
				"Frame Color":     "White",
				"U-Value":         "0.30 W/m²K",
				"Sound Reduction": "35dB",
				"Security":        "Multi-point locking system",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=800&q=80",
				"https://images.unsplash.com/photo-1604147706283-d7119b5b822c?w=800&q=80",
				"https://images.unsplash.com/photo-1513694203232-719a280e022f?w=800&q=80",
			},
		},
		{
			ID:          "2",
			Name:        "Aluminum Sliding Window",
			Description: "Modern sliding window with slim aluminum frame, perfect for contemporary homes.",
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1604147495798-57beb5d6af73?w=500&q=80",
			Category:    "aluminum",
			Features: []string{
				"Slim profile design",
				"Smooth sliding mechanism",
				"Corrosion resistant",
				"Multiple locking points",
				"Custom sizing available",
			},
			Specifications: map[string]string{
				"Material":        "Aluminum",
				"Glass Type":      "Double glazed, Tempered",
				"Frame Color":     "Silver",
				"U-Value":         "0.35 W/m²K",
				"Sound Reduction": "32dB",
				"Security":        "Multi-point locking system",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1604147495798-57beb5d6af73?w=800&q=80",
				"https://images.unsplash.com/photo-1605117882932-f9e32b03fea9?w=800&q=80",
				"https://images.unsplash.com/photo-1605117503035-1fa9f79999d7?w=800&q=80",
			},
		},
		{
			ID:          "3",
			Name:        "Wooden Frame Window",
			Description: "Classic wooden frame windows that add warmth and character to traditional homes.",
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=500&q=80",
			Category:    "wooden",
			Features: []string{
				"Natural wood aesthetics",
				"Excellent insulation",
				"Environmentally friendly",
				"Custom finishes available",
				"Traditional craftsmanship",
			},
			Specifications: map[string]string{
				"Material":        "Solid Pine/Oak",
				"Glass Type":      "Double glazed, Argon filled",
				"Frame Color":     "Natural wood/Custom stain",
				"U-Value":         "0.28 W/m²K",
				"Sound Reduction": "38dB",
				"Security":        "Traditional lock with modern security",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1513694203232-719a280e022f?w=800&q=80",
				"https://images.unsplash.com/photo-1604148482093-d58fdd7a8b0e?w=800&q=80",
				"https://images.unsplash.com/photo-1600607686527-6fb886090705?w=800&q=80",
			},
		},
		{
			ID:          "4",
			Name:        "Energy Efficient Casement",
			Description: "Top-rated energy efficient casement windows with triple glazing for maximum insulation.",
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=500&q=80",
			Category:    "vinyl",
			Features: []string{
				"Triple glazed glass",
				"Highest energy efficiency rating",
				"Argon gas filled",
				"Thermal break technology",
				"Weather-resistant seals",
			},
			Specifications: map[string]string{
				"Material":        "Reinforced Vinyl",
				"Glass Type":      "Triple glazed, Low-E",
				"Frame Color":     "White/Custom",
				"U-Value":         "0.18 W/m²K",
				"Sound Reduction": "42dB",
				"Security":        "Advanced multi-point locking",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800&q=80",
				"https://images.unsplash.com/photo-1600607687644-c7ddd0d8a99f?w=800&q=80",
				"https://images.unsplash.com/photo-1600607688066-890987f19a02?w=800&q=80",
			},
		},
	}
}
