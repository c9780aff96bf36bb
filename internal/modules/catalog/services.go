package catalog

// ServiceInfo describes one offered workshop service.
type ServiceInfo struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"price_min"`
	PriceMax    float64 `json:"price_max"`
	Duration    string  `json:"duration"`
}

// offeredServices is the fixed set of services the shop takes bookings for.
// The chatbot and the intake validator both read from this table.
var offeredServices = []ServiceInfo{
	{
		Slug:        "oil-change",
		Name:        "Oil Change",
		Description: "Quick and professional oil change service. Recommended every 5,000-10,000 km.",
		PriceMin:    80,
		PriceMax:    150,
		Duration:    "30 minutes",
	},
	{
		Slug:        "brake-service",
		Name:        "Brake Service",
		Description: "Complete brake inspection, pad replacement, rotor resurfacing and fluid flush.",
		PriceMin:    300,
		PriceMax:    800,
		Duration:    "1-2 hours",
	},
	{
		Slug:        "battery",
		Name:        "Battery",
		Description: "Battery testing, cleaning and replacement for all makes and models.",
		PriceMin:    200,
		PriceMax:    400,
		Duration:    "30 minutes",
	},
	{
		Slug:        "engine-diagnostics",
		Name:        "Engine Diagnostics",
		Description: "Advanced diagnostic equipment to identify engine problems quickly and accurately.",
		PriceMin:    100,
		PriceMax:    200,
		Duration:    "45 minutes",
	},
	{
		Slug:        "tyre-service",
		Name:        "Tyre Service",
		Description: "Tyre rotation, balancing, alignment and replacement.",
		PriceMin:    100,
		PriceMax:    600,
		Duration:    "1 hour",
	},
	{
		Slug:        "transmission",
		Name:        "Transmission Service",
		Description: "Transmission fluid change, diagnostics and repair for smooth gear shifting.",
		PriceMin:    200,
		PriceMax:    1000,
		Duration:    "1-3 hours",
	},
}
