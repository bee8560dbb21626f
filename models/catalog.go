package models

// RepairItem is an appliance the workshop services. Note carries workshop
// restrictions shown to the user on the item-selection step.
type RepairItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// RepairItems is the catalog of appliances offered on the appliance repair
// path.
var RepairItems = []RepairItem{
	{ID: "DISHWASHER", Label: "DISHWASHER"},
	{ID: "MICROWAVE", Label: "MICROWAVE"},
	{ID: "OVEN", Label: "OVEN"},
	{ID: "TUMBLE DRYER", Label: "TUMBLE DRYER"},
	{ID: "WASHING MACHINE", Label: "WASHING MACHINE"},
	{ID: "CHEST FREEZER", Label: "CHEST FREEZER", Note: "We don't do Regas or Compressor Exchange"},
	{ID: "FRIDGE", Label: "FRIDGE", Note: "We don't do Regas or Compressor Exchange"},
	{ID: "CAMPING FRIDGE", Label: "CAMPING FRIDGE", Note: "We repair this item at our workshop only - We don't do Regas or Compressor Exchange"},
	{ID: "AIR FRYER", Label: "AIR FRYER", Note: "We repair this item at our workshop only"},
	{ID: "COFFEE MACHINE", Label: "COFFEE MACHINE", Note: "We repair this item at our workshop only"},
	{ID: "ICE MACHINE", Label: "ICE MACHINE", Note: "We repair this item at our workshop only"},
	{ID: "SNAPPY CHEF", Label: "SNAPPY CHEF", Note: "We repair this item at our workshop only"},
	{ID: "SMEG KETTLE", Label: "SMEG KETTLE", Note: "We repair this item at our workshop only"},
	{ID: "SMEG TOASTER", Label: "SMEG TOASTER", Note: "We repair this item at our workshop only"},
	{ID: "VACUUM CLEANER", Label: "VACUUM CLEANER", Note: "We repair this item at our workshop only"},
	{ID: "OTHER", Label: "Other"},
}

// PaymentMethodOption is a way the customer can settle on the premises.
type PaymentMethodOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PaymentMethodOptions is the catalog of accepted payment methods.
var PaymentMethodOptions = []PaymentMethodOption{
	{ID: "Card", Label: "Card (Card Machine)"},
	{ID: "EFT", Label: "EFT"},
	{ID: "PayShap", Label: "PayShap"},
}

// PropertyTypes lists every valid address variant tag.
var PropertyTypes = []PropertyType{
	PropertyHome,
	PropertyComplex,
	PropertyEstateHouse,
	PropertyEstateComplex,
	PropertyOffice,
	PropertySmallHolding,
	PropertyFarm,
	PropertyOther,
}

// Cities lists the service areas. "Other" lets the user type a free-text city.
var Cities = []string{"Centurion", "Midrand", "Pretoria", "Other"}

// SuburbsByCity is the suburb picker contents per service area. Cities outside
// the enumerated set have no suburb list; the user types one.
var SuburbsByCity = map[string][]string{
	"Centurion": {
		"Amberfield", "Arandia", "Bronberrick", "Celtisdal", "Centurion Central", "Claudius",
		"Clubview", "Die Hoewes", "Doringkloof", "Eco-Park Estate", "Eldoraigne", "Erasmia", "Hennopspark",
		"Heuweloord", "Highveld", "Irene", "Kloofsig", "Kosmosdal", "Laudium", "Louwlardia",
		"Lyttelton", "Lyttelton A.H.", "Lyttelton Manor", "Midstream", "Monavoni", "Olievenhoutbosch",
		"Pierre van Ryneveld Park", "Raslouw", "Rooihuiskraal", "Rooihuiskraal Noord",
		"Sunderland Ridge", "Thatchfield", "The Reeds", "Valhalla", "Wierda Park", "Zwartkop",
	},
	"Midrand": {
		"Allandale", "Barbeque Downs", "Beaulieu", "Blue Hills", "Carlswald", "Clayville", "Country View",
		"Crowthorne", "Ebony Park", "Erand", "Glen Austin", "Glenferness", "Halfway Gardens", "Halfway House",
		"Ivory Park", "Kaalfontein", "Kyalami", "Noordwyk", "President Park", "Rabie Ridge", "Sagewood",
		"Summerset", "Vorna Valley", "Willaway", "Waterfall",
	},
	"Pretoria": {
		"Akasia", "Amandasig", "Annlin", "Arcadia", "Boardwalk", "Brooklyn", "Chantelle", "Claremont",
		"Clydesdale", "Constantia Park", "Danville", "Daspoort", "Doornpoort", "Dorandia", "Elarduspark",
		"Equestria", "Erasmuskloof", "Erasmusrand", "Faerie Glen", "Garsfontein", "Gezina", "Groenkloof",
		"Hatfield", "Hazelwood", "Hermanstad", "Karenpark", "Kirkney", "Lady Selborne", "Lukasrand",
		"Lynnwood", "Magalieskruin", "Menlo Park", "Montana", "Monument Park", "Moreleta Park",
		"Mountain View", "Muckleneuk", "Newlands", "Pretoria Central", "Pretoria North", "Pretoria West",
		"Proclamation Hill", "Rietvalleirand", "Riviera", "Salvokop", "Silver Lakes", "Sinoville",
		"Suiderberg", "Sunnyside", "Theresapark", "Wapadrand", "Waterkloof", "Waterkloof Ridge",
		"Wingate Park", "Wonderboom",
	},
}

// AddressOptions bundles everything the address step needs to render its
// pickers.
type AddressOptions struct {
	PropertyTypes []PropertyType      `json:"propertyTypes"`
	Cities        []string            `json:"cities"`
	SuburbsByCity map[string][]string `json:"suburbsByCity"`
}
