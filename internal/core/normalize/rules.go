package normalize

// BrandRules covers the vendor spellings seen in the live feed.
func BrandRules() RuleTable {
	return RuleTable{
		{Canonical: "Rolex", Variants: []string{"rol", "rolex", "oyster"}},
		{Canonical: "Omega", Variants: []string{"omega", "speedmaster"}},
		{Canonical: "Audemars Piguet", Variants: []string{"ap", "audemars"}},
		{Canonical: "G-shock", Variants: []string{"gshock", "g-shock", "casio g"}},
		{Canonical: "Casio", Variants: []string{"casio", "edifice"}},
		{Canonical: "Dior", Variants: []string{"dior", "gem"}},
		{Canonical: "Swarovski", Variants: []string{"swarovski", "octagon"}},
		{Canonical: "Nike", Variants: []string{"nik", "nke", "force"}},
		{Canonical: "Louis Vuitton", Variants: []string{"vuitton", "lv"}},
		{Canonical: "Converse", Variants: []string{"conver", "chuck"}},
	}
}

func CategoryRules() RuleTable {
	return RuleTable{
		{Canonical: "Luxury", Variants: []string{"luxury", "classic", "premium"}},
		{Canonical: "Casual", Variants: []string{"casual", "daily"}},
		{Canonical: "Sport", Variants: []string{"sport", "fitness", "active"}},
		{Canonical: "Girls Watch", Variants: []string{"girls", "women", "ladies"}},
	}
}
