package catalog

// carDatabase maps vehicle makes to the models the workshop sees.
var carDatabase = map[string][]string{
	"Alfa Romeo":    {"4C", "Giulia", "Stelvio", "Tonale"},
	"Audi":          {"A1", "A3", "A4", "A5", "A6", "A8", "E-tron", "Q2", "Q3", "Q5", "Q7", "Q8", "RS3", "S3", "TT"},
	"BMW":           {"1 Series", "2 Series", "3 Series", "4 Series", "5 Series", "7 Series", "i4", "iX", "M3", "M4", "X1", "X3", "X5", "X7", "Z4"},
	"Chevrolet":     {"Camaro", "Colorado", "Corvette", "Silverado", "Trailblazer"},
	"Ford":          {"Bronco", "Escape", "Everest", "F-150", "Fiesta", "Focus", "Mondeo", "Mustang", "Puma", "Ranger", "Territory", "Transit"},
	"Holden":        {"Acadia", "Astra", "Barina", "Captiva", "Colorado", "Commodore", "Cruze", "Equinox", "Trailblazer", "Trax"},
	"Honda":         {"Accord", "Civic", "CR-V", "HR-V", "Jazz", "Odyssey"},
	"Hyundai":       {"Accent", "Elantra", "i30", "Ioniq 5", "Kona", "Palisade", "Santa Fe", "Sonata", "Tucson", "Venue"},
	"Isuzu":         {"D-Max", "MU-X"},
	"Jeep":          {"Cherokee", "Compass", "Gladiator", "Grand Cherokee", "Wrangler"},
	"Kia":           {"Carnival", "Cerato", "EV6", "Picanto", "Rio", "Seltos", "Sorento", "Sportage", "Stinger"},
	"Land Rover":    {"Defender", "Discovery", "Discovery Sport", "Range Rover", "Range Rover Evoque", "Range Rover Sport"},
	"Lexus":         {"ES", "IS", "LX", "NX", "RX", "UX"},
	"Mazda":         {"BT-50", "CX-3", "CX-30", "CX-5", "CX-8", "CX-9", "Mazda2", "Mazda3", "Mazda6", "MX-5"},
	"Mercedes-Benz": {"A-Class", "C-Class", "CLA", "E-Class", "GLA", "GLB", "GLC", "GLE", "S-Class", "Sprinter", "Vito"},
	"Mini":          {"Clubman", "Convertible", "Cooper", "Countryman"},
	"Mitsubishi":    {"ASX", "Eclipse Cross", "Outlander", "Pajero", "Pajero Sport", "Triton"},
	"Nissan":        {"370Z", "Juke", "Leaf", "Navara", "Pathfinder", "Patrol", "Qashqai", "X-Trail"},
	"Peugeot":       {"2008", "208", "3008", "308", "5008", "508", "Partner"},
	"Porsche":       {"718 Boxster", "718 Cayman", "911", "Cayenne", "Macan", "Panamera", "Taycan"},
	"Renault":       {"Arkana", "Captur", "Koleos", "Megane", "Trafic"},
	"Skoda":         {"Fabia", "Kamiq", "Karoq", "Kodiaq", "Octavia", "Scala", "Superb"},
	"Subaru":        {"BRZ", "Crosstrek", "Forester", "Impreza", "Liberty", "Outback", "WRX"},
	"Suzuki":        {"Baleno", "Ignis", "Jimny", "S-Cross", "Swift", "Vitara"},
	"Tesla":         {"Model 3", "Model S", "Model X", "Model Y"},
	"Toyota":        {"86", "C-HR", "Camry", "Corolla", "Corolla Cross", "HiAce", "HiLux", "Kluger", "LandCruiser", "Prado", "Prius", "RAV4", "Supra", "Yaris"},
	"Volkswagen":    {"Amarok", "Caddy", "Golf", "Passat", "Polo", "T-Cross", "Tiguan", "Touareg", "Transporter"},
	"Volvo":         {"C40", "S60", "S90", "V60", "XC40", "XC60", "XC90"},
}
