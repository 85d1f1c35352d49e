// Package display implements presentation lookups for the directory UI:
// localized category labels, language flags, and social profile URLs.
package display

import (
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// Category is a top-level directory category with its base English label.
type Category struct {
	ID    domain.CategoryID
	Label string
	Icon  string
}

// Subcategory is a second-level entry under one category.
type Subcategory struct {
	ID    string
	Label string
	Icon  string
}

// Categories lists every directory category in display order.
var Categories = []Category{
	{ID: domain.CategoryAll, Label: "All"},
	{ID: "real-estate", Label: "Real Estate", Icon: "🏠"},
	{ID: "home-services", Label: "Home Services", Icon: "🛠️"},
	{ID: "hosting", Label: "Property Hosting", Icon: "🔑"},
	{ID: "food", Label: "Food & Dining", Icon: "🍽️"},
	{ID: "legal-bureaucracy", Label: "Legal & Bureaucracy", Icon: "⚖️"},
	{ID: "relocation-expat", Label: "Relocation & Expat Services", Icon: "🧳"},
	{ID: "family-care", Label: "Family & Care", Icon: "👨‍👩‍👧"},
	{ID: "education-courses", Label: "Education & Courses", Icon: "📚"},
	{ID: "wellness-beauty", Label: "Wellness & Beauty", Icon: "💆‍♀️"},
	{ID: "sports-outdoors", Label: "Sports & Outdoors", Icon: "🏃‍♂️"},
	{ID: "medical", Label: "Medical", Icon: "🏥"},
	{ID: "transportation", Label: "Transportation", Icon: "🚗"},
	{ID: "pets", Label: "Pets", Icon: "🐾"},
	{ID: "events-entertainment", Label: "Events & Entertainment", Icon: "🎉"},
	{ID: "professional", Label: "Professional Services", Icon: "💼"},
}

// Subcategories maps each category to its subcategories in display order.
var Subcategories = map[domain.CategoryID][]Subcategory{
	"real-estate": {
		{ID: "real-estate-agent", Label: "Real Estate Agent", Icon: "🔑"},
		{ID: "property-management", Label: "Property Management", Icon: "🏢"},
		{ID: "architect", Label: "Architect", Icon: "🏗️"},
		{ID: "contractor", Label: "Contractor", Icon: "👷‍♂️"},
		{ID: "notary", Label: "Notary", Icon: "📜"},
		{ID: "legal-real-estate", Label: "Real Estate Lawyer", Icon: "⚖️"},
		{ID: "home-staging", Label: "Home Staging", Icon: "🛋️"},
		{ID: "renovation", Label: "Renovation", Icon: "🧱"},
	},
	"home-services": {
		{ID: "cleaning", Label: "Cleaning", Icon: "🧹"},
		{ID: "handyman", Label: "Handyman", Icon: "🔧"},
		{ID: "plumber", Label: "Plumber", Icon: "🚰"},
		{ID: "electrician", Label: "Electrician", Icon: "⚡"},
		{ID: "carpenter", Label: "Carpenter", Icon: "🔨"},
		{ID: "gardener", Label: "Gardener", Icon: "🌱"},
		{ID: "pest-control", Label: "Pest Control", Icon: "🐜"},
		{ID: "roofer", Label: "Roofer", Icon: "🏠"},
		{ID: "painter", Label: "Painter", Icon: "🎨"},
		{ID: "glazier", Label: "Glazier / Windows", Icon: "🪟"},
		{ID: "pool-service", Label: "Pool Service", Icon: "🏊"},
		{ID: "appliance-repair", Label: "Appliance Repair", Icon: "🧺"},
		{ID: "solar-photovoltaics", Label: "Solar / Photovoltaics", Icon: "☀️"},
		{ID: "security-systems", Label: "Security Systems", Icon: "🔒"},
		{ID: "locksmith", Label: "Locksmith", Icon: "🔐"},
		{ID: "aircon-hvac", Label: "Air Conditioning / HVAC", Icon: "❄️"},
		{ID: "moving-company", Label: "Moving & Relocation", Icon: "🚚"},
	},
	"hosting": {
		{ID: "airbnb-management", Label: "Airbnb Management", Icon: "🏡"},
		{ID: "key-holding", Label: "Key Holding", Icon: "🔑"},
		{ID: "guest-reception", Label: "Guest Reception", Icon: "🤝"},
		{ID: "laundry-rentals", Label: "Laundry for Rentals", Icon: "🧺"},
		{ID: "home-checks", Label: "Home Check-ins", Icon: "👀"},
	},
	"food": {
		{ID: "restaurant", Label: "Restaurant", Icon: "🍽️"},
		{ID: "cafe", Label: "Café", Icon: "☕"},
		{ID: "private-chef", Label: "Private Chef", Icon: "👨‍🍳"},
		{ID: "catering", Label: "Catering", Icon: "🥂"},
		{ID: "meal-prep", Label: "Meal Prep / Delivery", Icon: "🍱"},
		{ID: "bakery", Label: "Bakery", Icon: "🥖"},
		{ID: "wine-spirits", Label: "Wine & Spirits", Icon: "🍷"},
	},
	"legal-bureaucracy": {
		{ID: "lawyer", Label: "Lawyer", Icon: "⚖️"},
		{ID: "tax-advisor", Label: "Tax Advisor", Icon: "📊"},
	},
	"relocation-expat": {
		{ID: "immigration-residency", Label: "Immigration / Residency", Icon: "🛂"},
		{ID: "nif-bank", Label: "NIF & Bank Setup", Icon: "🏦"},
		{ID: "documentation-help", Label: "Documentation Help", Icon: "📄"},
		{ID: "relocation-agency", Label: "Relocation Agency", Icon: "📦"},
		{ID: "settling-in-services", Label: "Settling-in Services", Icon: "🧭"},
	},
	"family-care": {
		{ID: "babysitting", Label: "Babysitting", Icon: "🧸"},
		{ID: "nanny", Label: "Nanny", Icon: "👶"},
		{ID: "elderly-care", Label: "Elderly Care", Icon: "🧓"},
		{ID: "kindergarten-daycare", Label: "Kindergarten / Daycare", Icon: "🧒"},
		{ID: "summer-camp", Label: "Summer Camp", Icon: "🏕️"},
		{ID: "special-needs", Label: "Special Needs Support", Icon: "🧩"},
	},
	"education-courses": {
		{ID: "language-school", Label: "Language School", Icon: "📘"},
		{ID: "tutoring", Label: "Tutoring", Icon: "✏️"},
		{ID: "school-advice", Label: "School Advice", Icon: "🏫"},
		{ID: "music-school", Label: "Music School", Icon: "🎵"},
		{ID: "dance-school", Label: "Dance School", Icon: "💃"},
	},
	"wellness-beauty": {
		{ID: "massage", Label: "Massage", Icon: "💆‍♀️"},
		{ID: "yoga", Label: "Yoga", Icon: "🧘‍♀️"},
		{ID: "pilates", Label: "Pilates", Icon: "🤸‍♀️"},
		{ID: "spa", Label: "Spa", Icon: "🧖‍♀️"},
		{ID: "hair-salon", Label: "Hair Salon", Icon: "💇‍♀️"},
		{ID: "barber", Label: "Barber", Icon: "💈"},
		{ID: "dermatology-botox", Label: "Aesthetic Medicine & Botox", Icon: "💉"},
		{ID: "nutritionist", Label: "Nutritionist", Icon: "🥗"},
		{ID: "physiotherapy", Label: "Physiotherapy", Icon: "🦵"},
		{ID: "osteopath", Label: "Osteopath", Icon: "🦴"},
		{ID: "psychologist", Label: "Psychologist", Icon: "🧠"},
		{ID: "acupuncture", Label: "Acupuncture", Icon: "🪡"},
		{ID: "personal-training", Label: "Personal Training", Icon: "🏋️"},
	},
	"sports-outdoors": {
		{ID: "surf-school", Label: "Surf School", Icon: "🏄‍♂️"},
		{ID: "padel", Label: "Padel", Icon: "🏓"},
		{ID: "gym-fitness", Label: "Gym & Fitness", Icon: "💪"},
		{ID: "running-club", Label: "Running Club", Icon: "🏃‍♂️"},
		{ID: "swimming", Label: "Swimming & Aquatics", Icon: "🏊‍♂️"},
		{ID: "golf", Label: "Golf", Icon: "⛳"},
		{ID: "tennis", Label: "Tennis", Icon: "🎾"},
		{ID: "cycling", Label: "Cycling", Icon: "🚴‍♂️"},
		{ID: "martial-arts", Label: "Martial Arts", Icon: "🥋"},
		{ID: "sailing-school", Label: "Sailing School", Icon: "⛵"},
		{ID: "boat-tours", Label: "Boat Tours & Charters", Icon: "🛥️"},
		{ID: "horse-riding", Label: "Horse Riding", Icon: "🐎"},
	},
	"medical": {
		{ID: "gp", Label: "General Practitioner", Icon: "👨‍⚕️"},
		{ID: "clinic-urgent-care", Label: "Clinic / Urgent Care", Icon: "🏥"},
		{ID: "laboratory", Label: "Laboratory / Analysis", Icon: "🧪"},
		{ID: "imaging", Label: "Imaging", Icon: "🩻"},
		{ID: "dentist", Label: "Dentist", Icon: "🦷"},
		{ID: "pediatrics", Label: "Pediatrics", Icon: "🍼"},
		{ID: "gynecology", Label: "Gynecology", Icon: "👩‍⚕️"},
		{ID: "orthopedist", Label: "Orthopedist", Icon: "🦴"},
		{ID: "dermatologist", Label: "Dermatologist", Icon: "🧴"},
		{ID: "vaccinations-travel", Label: "Vaccinations / Travel", Icon: "💉"},
	},
	"transportation": {
		{ID: "airport-transfer", Label: "Airport Transfer", Icon: "✈️"},
		{ID: "taxi", Label: "Taxi", Icon: "🚕"},
		{ID: "private-driver", Label: "Private Driver", Icon: "🚘"},
		{ID: "shuttle-service", Label: "Shuttle Service", Icon: "🚐"},
		{ID: "car-rental", Label: "Car Rental", Icon: "🚗"},
		{ID: "scooter-rental", Label: "Scooter Rental", Icon: "🛵"},
		{ID: "bike-rental", Label: "Bike Rental", Icon: "🚲"},
		{ID: "bike-repair", Label: "Bike Repair", Icon: "🛠️"},
		{ID: "scooter-repair", Label: "Scooter Repair", Icon: "🛠️"},
	},
	"pets": {
		{ID: "veterinarian", Label: "Veterinarian", Icon: "🐾"},
		{ID: "grooming", Label: "Grooming", Icon: "✂️"},
		{ID: "dog-walker", Label: "Dog Walker", Icon: "🚶‍♂️"},
		{ID: "pet-sitting", Label: "Pet Sitting", Icon: "🐕"},
		{ID: "pet-boarding", Label: "Pet Boarding / Hotel", Icon: "🏨"},
		{ID: "pet-taxi", Label: "Pet Taxi", Icon: "🚕"},
		{ID: "pet-supplies", Label: "Pet Supplies", Icon: "🦴"},
		{ID: "pet-training", Label: "Dog Training", Icon: "🦮"},
	},
	"events-entertainment": {
		{ID: "dj", Label: "DJ / Music", Icon: "🎧"},
		{ID: "live-music", Label: "Live Music", Icon: "🎤"},
		{ID: "event-planner", Label: "Event Planner", Icon: "🎪"},
		{ID: "kids-parties", Label: "Kids Parties", Icon: "🥳"},
		{ID: "event-decoration", Label: "Event Decoration", Icon: "🎈"},
		{ID: "party-rental", Label: "Party Rentals", Icon: "🪑"},
		{ID: "wedding-planner", Label: "Wedding Planner", Icon: "💍"},
	},
	"professional": {
		{ID: "photography", Label: "Photographer", Icon: "📸"},
		{ID: "video-maker", Label: "Video Maker", Icon: "🎥"},
		{ID: "it-service", Label: "IT Services", Icon: "💻"},
		{ID: "translation", Label: "Translation", Icon: "🌐"},
		{ID: "consulting", Label: "Business Consulting", Icon: "📈"},
		{ID: "insurance-broker", Label: "Insurance Broker", Icon: "📋"},
		{ID: "accountant", Label: "Accountant", Icon: "📊"},
		{ID: "coworking", Label: "Coworking Space", Icon: "🏢"},
		{ID: "web-design", Label: "Web Design & Dev", Icon: "🖥️"},
		{ID: "digital-marketing", Label: "Digital Marketing", Icon: "📣"},
		{ID: "hr-recruitment", Label: "HR & Recruitment", Icon: "👥"},
	},
}

var categoryLabelsPT = map[domain.CategoryID]string{
	domain.CategoryAll:     "Todos",
	"real-estate":          "Imobiliário",
	"home-services":        "Serviços para Casa",
	"hosting":              "Gestão de Alojamento",
	"food":                 "Comida & Restauração",
	"legal-bureaucracy":    "Legal & Burocracia",
	"relocation-expat":     "Relocation & Expats",
	"family-care":          "Família & Cuidados",
	"education-courses":    "Educação & Cursos",
	"wellness-beauty":      "Bem-estar & Beleza",
	"sports-outdoors":      "Desporto & Ar Livre",
	"medical":              "Saúde",
	"transportation":       "Transportes",
	"pets":                 "Animais de Estimação",
	"events-entertainment": "Eventos & Entretenimento",
	"professional":         "Serviços Profissionais",
}

var subcategoryLabelsPT = map[string]string{
	"real-estate-agent":     "Agente Imobiliário",
	"property-management":   "Gestão de Propriedades",
	"architect":             "Arquiteto",
	"contractor":            "Empreiteiro",
	"notary":                "Notário",
	"legal-real-estate":     "Advogado Imobiliário",
	"home-staging":          "Home Staging",
	"renovation":            "Renovações",
	"cleaning":              "Limpezas",
	"handyman":              "Faz-tudo",
	"plumber":               "Canalizador",
	"electrician":           "Electricista",
	"carpenter":             "Carpinteiro",
	"gardener":              "Jardineiro",
	"pest-control":          "Desinfestação",
	"roofer":                "Coberturas / Telhados",
	"painter":               "Pintor",
	"glazier":               "Vidros / Janelas",
	"pool-service":          "Manutenção de Piscinas",
	"appliance-repair":      "Reparação de Eletrodomésticos",
	"solar-photovoltaics":   "Painéis Solares",
	"security-systems":      "Sistemas de Segurança",
	"locksmith":             "Serralheiro",
	"aircon-hvac":           "Ar Condicionado / AVAC",
	"moving-company":        "Empresa de Mudanças",
	"airbnb-management":     "Gestão Airbnb",
	"key-holding":           "Guarda de Chaves",
	"guest-reception":       "Receção de Hóspedes",
	"laundry-rentals":       "Lavandaria para Alojamento",
	"home-checks":           "Vistorias à Casa",
	"restaurant":            "Restaurante",
	"cafe":                  "Café",
	"private-chef":          "Chef Privado",
	"catering":              "Catering",
	"meal-prep":             "Refeições / Entrega",
	"bakery":                "Padaria",
	"wine-spirits":          "Vinhos & Bebidas",
	"lawyer":                "Advogado",
	"tax-advisor":           "Consultor Fiscal",
	"immigration-residency": "Imigração / Residência",
	"nif-bank":              "NIF & Conta Bancária",
	"documentation-help":    "Apoio com Documentos",
	"relocation-agency":     "Agência de Relocation",
	"settling-in-services":  "Serviços de Acolhimento",
	"babysitting":           "Babysitting",
	"nanny":                 "Ama / Nanny",
	"elderly-care":          "Cuidados a Idosos",
	"kindergarten-daycare":  "Infantário / Creche",
	"summer-camp":           "Campo de Férias",
	"special-needs":         "Apoio Necessidades Especiais",
	"language-school":       "Escola de Línguas",
	"tutoring":              "Explicações",
	"school-advice":         "Apoio na Escolha de Escola",
	"music-school":          "Escola de Música",
	"dance-school":          "Escola de Dança",
	"massage":               "Massagem",
	"yoga":                  "Yoga",
	"pilates":               "Pilates",
	"spa":                   "Spa",
	"hair-salon":            "Cabeleireiro",
	"barber":                "Barbeiro",
	"dermatology-botox":     "Medicina Estética / Botox",
	"nutritionist":          "Nutricionista",
	"physiotherapy":         "Fisioterapia",
	"osteopath":             "Osteopata",
	"psychologist":          "Psicólogo",
	"acupuncture":           "Acupunctura",
	"personal-training":     "Treino Personalizado",
	"surf-school":           "Escola de Surf",
	"padel":                 "Pádel",
	"gym-fitness":           "Ginásio & Fitness",
	"running-club":          "Clube de Corrida",
	"swimming":              "Natação & Aquáticos",
	"golf":                  "Golfe",
	"tennis":                "Ténis",
	"cycling":               "Ciclismo",
	"martial-arts":          "Artes Marciais",
	"sailing-school":        "Escola de Vela",
	"boat-tours":            "Passeios de Barco",
	"horse-riding":          "Equitação",
	"gp":                    "Clínico Geral",
	"clinic-urgent-care":    "Clínica / Urgências",
	"laboratory":            "Análises Clínicas",
	"imaging":               "Imagiologia",
	"dentist":               "Dentista",
	"pediatrics":            "Pediatria",
	"gynecology":            "Ginecologia",
	"orthopedist":           "Ortopedista",
	"dermatologist":         "Dermatologista",
	"vaccinations-travel":   "Vacinas / Viagem",
	"airport-transfer":      "Transfer Aeroporto",
	"taxi":                  "Táxi",
	"private-driver":        "Motorista Privado",
	"shuttle-service":       "Shuttle",
	"car-rental":            "Aluguer de Carro",
	"scooter-rental":        "Aluguer de Scooter",
	"bike-rental":           "Aluguer de Bicicleta",
	"bike-repair":           "Reparação de Bicicleta",
	"scooter-repair":        "Reparação de Scooter",
	"veterinarian":          "Veterinário",
	"grooming":              "Grooming / Tosquia",
	"dog-walker":            "Dog Walker",
	"pet-sitting":           "Pet Sitting",
	"pet-boarding":          "Hotel para Animais",
	"pet-taxi":              "Táxi para Animais",
	"pet-supplies":          "Loja de Animais",
	"pet-training":          "Treino Canino",
	"dj":                    "DJ / Música",
	"live-music":            "Música ao Vivo",
	"event-planner":         "Organização de Eventos",
	"kids-parties":          "Festas Infantis",
	"event-decoration":      "Decoração de Eventos",
	"party-rental":          "Aluguer para Festas",
	"wedding-planner":       "Wedding Planner",
	"photography":           "Fotógrafo",
	"video-maker":           "Video Maker",
	"it-service":            "Serviços de TI",
	"translation":           "Tradução",
	"consulting":            "Consultoria",
	"insurance-broker":      "Mediador de Seguros",
	"accountant":            "Contabilista",
	"coworking":             "Coworking",
	"web-design":            "Web Design & Desenvolvimento",
	"digital-marketing":     "Marketing Digital",
	"hr-recruitment":        "RH & Recrutamento",
}

// CategoryLabel returns the localized label for a category id, falling back
// to the raw id when no translation exists. Never empty, never an error.
func CategoryLabel(id domain.CategoryID, locale domain.Locale) string {
	if locale == domain.LocalePT {
		if label, ok := categoryLabelsPT[id]; ok {
			return label
		}
	}
	for _, c := range Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return string(id)
}

// SubcategoryLabel returns the localized label for a subcategory under the
// given category, falling back to the raw id when no translation exists.
func SubcategoryLabel(categoryID domain.CategoryID, subID string, locale domain.Locale) string {
	if locale == domain.LocalePT {
		if label, ok := subcategoryLabelsPT[subID]; ok {
			return label
		}
	}
	for _, s := range Subcategories[categoryID] {
		if s.ID == subID {
			return s.Label
		}
	}
	return subID
}
