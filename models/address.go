package models

// PropertyType discriminates the address variants.
type PropertyType string

const (
	PropertyHome          PropertyType = "Home"
	PropertyComplex       PropertyType = "Complex"
	PropertyEstateHouse   PropertyType = "House in an Estate"
	PropertyEstateComplex PropertyType = "Complex in an Estate"
	PropertyOffice        PropertyType = "Office"
	PropertySmallHolding  PropertyType = "Small Holding"
	PropertyFarm          PropertyType = "Farm"
	PropertyOther         PropertyType = "Other"
)

// HomeAddress is a free-standing house.
type HomeAddress struct {
	HouseNumber string `bson:"house_number" json:"houseNumber"`
	StreetName  string `bson:"street_name" json:"streetName"`
}

// ComplexAddress is a unit inside a residential complex. ComplexName may be
// the sentinel "Other", in which case OtherComplexName carries the real name.
type ComplexAddress struct {
	UnitNumber       string `bson:"unit_number" json:"unitNumber"`
	ComplexName      string `bson:"complex_name" json:"complexName"`
	OtherComplexName string `bson:"other_complex_name,omitempty" json:"otherComplexName,omitempty"`
	StreetNumber     string `bson:"street_number" json:"streetNumber"`
	StreetName       string `bson:"street_name" json:"streetName"`
}

// EstateHouseAddress is a stand-alone house inside a security estate.
type EstateHouseAddress struct {
	StandNumber        string `bson:"stand_number" json:"standNumber"`
	HouseNumber        string `bson:"house_number" json:"houseNumber"`
	StreetNameInEstate string `bson:"street_name_in_estate" json:"streetNameInEstate"`
	EstateName         string `bson:"estate_name" json:"estateName"`
}

// EstateComplexAddress is a unit in a complex that is itself inside an estate.
type EstateComplexAddress struct {
	UnitNumber         string `bson:"unit_number" json:"unitNumber"`
	ComplexName        string `bson:"complex_name" json:"complexName"`
	OtherComplexName   string `bson:"other_complex_name,omitempty" json:"otherComplexName,omitempty"`
	StreetNameInEstate string `bson:"street_name_in_estate" json:"streetNameInEstate"`
	EstateName         string `bson:"estate_name" json:"estateName"`
}

// OfficeAddress is a business premises in an office park.
type OfficeAddress struct {
	OfficeName     string `bson:"office_name" json:"officeName"`
	OfficeParkName string `bson:"office_park_name" json:"officeParkName"`
	StreetNumber   string `bson:"street_number" json:"streetNumber"`
	StreetName     string `bson:"street_name" json:"streetName"`
}

// SmallHoldingAddress is an agricultural small holding.
type SmallHoldingAddress struct {
	HoldingName string `bson:"holding_name" json:"holdingName"`
	StreetName  string `bson:"street_name" json:"streetName"`
}

// FarmAddress is a farm.
type FarmAddress struct {
	FarmName   string `bson:"farm_name" json:"farmName"`
	StreetName string `bson:"street_name" json:"streetName"`
}

// OtherAddress covers property types outside the enumerated set.
type OtherAddress struct {
	Description  string `bson:"description" json:"description"`
	StreetNumber string `bson:"street_number" json:"streetNumber"`
	StreetName   string `bson:"street_name" json:"streetName"`
}

// AddressDetails is a tagged union over the eight property types: exactly the
// variant named by PropertyType is expected to be non-nil. Suburb and City are
// shared across variants; when either holds the sentinel "Other", the matching
// free-text field carries the actual value.
type AddressDetails struct {
	PropertyType PropertyType `bson:"property_type" json:"propertyType"`

	// Private or Business.
	PropertyFunction string `bson:"property_function,omitempty" json:"propertyFunction,omitempty"`
	// "yes" or "no": whether the technician needs a gate/access code.
	AccessCodeRequired string `bson:"access_code_required,omitempty" json:"accessCodeRequired,omitempty"`

	Home          *HomeAddress          `bson:"home,omitempty" json:"home,omitempty"`
	Complex       *ComplexAddress       `bson:"complex,omitempty" json:"complex,omitempty"`
	EstateHouse   *EstateHouseAddress   `bson:"estate_house,omitempty" json:"estateHouse,omitempty"`
	EstateComplex *EstateComplexAddress `bson:"estate_complex,omitempty" json:"estateComplex,omitempty"`
	Office        *OfficeAddress        `bson:"office,omitempty" json:"office,omitempty"`
	SmallHolding  *SmallHoldingAddress  `bson:"small_holding,omitempty" json:"smallHolding,omitempty"`
	Farm          *FarmAddress          `bson:"farm,omitempty" json:"farm,omitempty"`
	Other         *OtherAddress         `bson:"other,omitempty" json:"other,omitempty"`

	Suburb               string `bson:"suburb,omitempty" json:"suburb,omitempty"`
	OtherSuburb          string `bson:"other_suburb,omitempty" json:"otherSuburb,omitempty"`
	City                 string `bson:"city,omitempty" json:"city,omitempty"`
	OtherCityDescription string `bson:"other_city_description,omitempty" json:"otherCityDescription,omitempty"`
}
