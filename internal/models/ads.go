package models

import "encoding/json"

// AdFilter carries the optional search parameters of GET /ads. Empty strings
// and nil pointers mean "no restriction".
type AdFilter struct {
	Title        string
	City         string
	AdType       string
	HouseType    string
	Complex      string
	Rooms        *int
	PriceMin     *int64
	PriceMax     *int64
	FloorMin     *int
	FloorMax     *int
	YearBuiltMin *int
	YearBuiltMax *int
	AreaMin      *float64
	AreaMax      *float64
}

// AdFields is the replaceable part of an ad. Clients post the whole ad object,
// so unknown keys such as id or user_fio are accepted and ignored.
type AdFields struct {
	Title         *string        `json:"title" validate:"required"`
	Description   NullableString `json:"description" validate:"required"`
	Rooms         *int           `json:"rooms"`
	City          *string        `json:"city" validate:"required"`
	Photos        []string       `json:"photos"`
	Price         *int64         `json:"price" validate:"required"`
	AdType        *string        `json:"ad_type" validate:"required"`
	HouseType     *string        `json:"house_type" validate:"required"`
	Floor         *int           `json:"floor"`
	FloorsInHouse *int           `json:"floors_in_house"`
	YearBuilt     *int           `json:"year_built"`
	Area          *float64       `json:"area"`
	Complex       *string        `json:"complex"`
}

type CreateAdRequest struct {
	UserID int `json:"user_id" validate:"required"`
	AdFields
}

type UpdateAdRequest struct {
	AdFields
}

// NullableString records whether a JSON key was sent at all. A present null
// leaves Value nil with Set true.
type NullableString struct {
	Value *string
	Set   bool
}

func (s *NullableString) UnmarshalJSON(data []byte) error {
	s.Set = true
	if string(data) == "null" {
		s.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}
