package services

import "github.com/HammerMeetNail/bloomnext/internal/models"

const placeholderImage = "https://placehold.co/600x400.png"

var defaultProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Classic Red Roses",
		Description: "A dozen long-stemmed red roses, the timeless symbol of love and passion.",
		Price:       59.99,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionAnniversary,
		Color:       models.ColorRed,
		AIHint:      "red roses",
	},
	{
		ID:          "2",
		Name:        "Sunshine Bouquet",
		Description: "Bright sunflowers and yellow daisies to light up any birthday.",
		Price:       45.00,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionBirthday,
		Color:       models.ColorYellow,
		AIHint:      "sunflower bouquet",
	},
	{
		ID:          "3",
		Name:        "Pink Tulip Delight",
		Description: "Fresh pink tulips wrapped in kraft paper, a cheerful birthday favourite.",
		Price:       39.50,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionBirthday,
		Color:       models.ColorPink,
		AIHint:      "pink tulips",
	},
	{
		ID:          "4",
		Name:        "Peaceful White Lilies",
		Description: "Elegant white lilies offering quiet comfort and remembrance.",
		Price:       64.00,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionSympathy,
		Color:       models.ColorWhite,
		AIHint:      "white lilies",
	},
	{
		ID:          "5",
		Name:        "Golden Celebration",
		Description: "Orange lilies and gerberas arranged to celebrate a big achievement.",
		Price:       52.25,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionCongratulations,
		Color:       models.ColorOrange,
		AIHint:      "orange flowers",
	},
	{
		ID:          "6",
		Name:        "Lavender Gratitude",
		Description: "Purple lisianthus and lavender sprigs that say thank you beautifully.",
		Price:       42.00,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionThankYou,
		Color:       models.ColorPurple,
		AIHint:      "purple flowers",
	},
	{
		ID:          "7",
		Name:        "Autumn Harvest",
		Description: "A seasonal mix of chrysanthemums, dahlias and dried wheat.",
		Price:       55.00,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionSeasonal,
		Color:       models.ColorMixed,
		IsSeasonal:  true,
		AIHint:      "autumn bouquet",
	},
	{
		ID:          "8",
		Name:        "Winter Wonderland",
		Description: "White amaryllis, pine and berries for the holiday season.",
		Price:       68.00,
		Image:       placeholderImage,
		Category:    models.CategoryFlowers,
		Occasion:    models.OccasionSeasonal,
		Color:       models.ColorWhite,
		IsSeasonal:  true,
		AIHint:      "winter flowers",
	},
	{
		ID:          "9",
		Name:        "Monstera Deliciosa",
		Description: "A striking split-leaf houseplant in a ceramic pot.",
		Price:       48.00,
		Image:       placeholderImage,
		Category:    models.CategoryPlants,
		Occasion:    models.OccasionCongratulations,
		Color:       models.ColorGreen,
		AIHint:      "monstera plant",
	},
	{
		ID:          "10",
		Name:        "Peace Lily",
		Description: "An easy-care plant with glossy leaves and white blooms.",
		Price:       36.00,
		Image:       placeholderImage,
		Category:    models.CategoryPlants,
		Occasion:    models.OccasionSympathy,
		Color:       models.ColorGreen,
		AIHint:      "peace lily",
	},
	{
		ID:          "11",
		Name:        "Orchid Elegance",
		Description: "A graceful pink phalaenopsis orchid for a lasting thank you.",
		Price:       58.50,
		Image:       placeholderImage,
		Category:    models.CategoryPlants,
		Occasion:    models.OccasionThankYou,
		Color:       models.ColorPink,
		AIHint:      "pink orchid",
	},
	{
		ID:          "12",
		Name:        "Spring Succulent Garden",
		Description: "A seasonal planter of mixed succulents in a wooden box.",
		Price:       32.75,
		Image:       placeholderImage,
		Category:    models.CategoryPlants,
		Occasion:    models.OccasionSeasonal,
		Color:       models.ColorMixed,
		IsSeasonal:  true,
		AIHint:      "succulent garden",
	},
}
