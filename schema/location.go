package schema

const (
	DistrictCollection = "districts"
	UpazilaCollection  = "upazilas"
)

// District and Upazila are static reference rows loaded once into the
// database; the application only ever reads them.
type District struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	BnName string `bson:"bn_name" json:"bn_name"`
}

type Upazila struct {
	ID         string `bson:"id" json:"id"`
	DistrictID string `bson:"district_id" json:"district_id"`
	Name       string `bson:"name" json:"name"`
	BnName     string `bson:"bn_name" json:"bn_name"`
}

// DistrictWithUpazilas is the nested shape served by the location
// endpoint, produced by a lookup aggregation.
type DistrictWithUpazilas struct {
	District `bson:",inline"`
	Upazilas []Upazila `bson:"upazilas" json:"upazilas"`
}
