package models

// Ad is a real-estate listing. Photos hold bare filenames when the ad is
// persisted and absolute URLs once a handler has resolved them for a response.
type Ad struct {
	ID            int      `json:"id"`
	UserID        int      `json:"user_id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	Rooms         int      `json:"rooms"`
	City          string   `json:"city"`
	Photos        []string `json:"photos"`
	Price         int64    `json:"price"`
	AdType        string   `json:"ad_type"`
	HouseType     string   `json:"house_type"`
	Floor         int      `json:"floor"`
	FloorsInHouse int      `json:"floors_in_house"`
	YearBuilt     int      `json:"year_built"`
	Area          float64  `json:"area"`
	Complex       *string  `json:"complex"`
	UserFio       string   `json:"user_fio"`
	UserPhone     string   `json:"user_phone"`
}
