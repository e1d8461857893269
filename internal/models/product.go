package models

type Category string

const (
	CategoryFlowers Category = "Flowers"
	CategoryPlants  Category = "Plants"
)

type Occasion string

const (
	OccasionAnniversary     Occasion = "Anniversary"
	OccasionBirthday        Occasion = "Birthday"
	OccasionCongratulations Occasion = "Congratulations"
	OccasionSympathy        Occasion = "Sympathy"
	OccasionThankYou        Occasion = "Thank You"
	OccasionSeasonal        Occasion = "Seasonal"
)

type Color string

const (
	ColorRed    Color = "Red"
	ColorYellow Color = "Yellow"
	ColorPink   Color = "Pink"
	ColorWhite  Color = "White"
	ColorOrange Color = "Orange"
	ColorPurple Color = "Purple"
	ColorGreen  Color = "Green"
	ColorMixed  Color = "Mixed"
)

// FilterAll matches every value of a catalog filter dimension.
const FilterAll = "All"

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Occasion    Occasion `json:"occasion"`
	Color       Color    `json:"color"`
	IsSeasonal  bool     `json:"isSeasonal,omitempty"`
	AIHint      string   `json:"aiHint,omitempty"`
}

// ProductFilter selects catalog products. Empty fields behave like FilterAll.
type ProductFilter struct {
	Category string `json:"category"`
	Occasion string `json:"occasion"`
	Color    string `json:"color"`
}

// Matches reports whether p satisfies every dimension of the filter.
func (f ProductFilter) Matches(p Product) bool {
	return matchesDimension(f.Category, string(p.Category)) &&
		matchesDimension(f.Occasion, string(p.Occasion)) &&
		matchesDimension(f.Color, string(p.Color))
}

func matchesDimension(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}
