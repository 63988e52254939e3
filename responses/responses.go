// Package responses builds the wire representations of stored records.
// Decimals are rendered with two fractional digits and dates as YYYY-MM-DD.
package responses

import (
	"kisan/models"

	"github.com/shopspring/decimal"
)

type FarmerResponse struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Village        string         `json:"village"`
	Phone          string         `json:"phone"`
	LandArea       string         `json:"land_area"`
	DateRegistered string         `json:"date_registered"`
	Lands          []LandResponse `json:"lands"`
}

type LandResponse struct {
	ID       uint   `json:"id"`
	Farmer   uint   `json:"farmer"`
	Location string `json:"location"`
	Area     string `json:"area"`
	SoilType string `json:"soil_type"`
}

type SchemeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ApplicationResponse carries the current names of the referenced farmer and
// scheme; they are read at render time and never stored.
type ApplicationResponse struct {
	ID              uint   `json:"id"`
	Farmer          uint   `json:"farmer"`
	Scheme          uint   `json:"scheme"`
	FarmerName      string `json:"farmer_name"`
	SchemeName      string `json:"scheme_name"`
	ApplicationDate string `json:"application_date"`
	Status          string `json:"status"`
}

type FeatureResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	IconColor   string `json:"icon_color"`
}

type Stats struct {
	FarmerCount          int64 `json:"farmer_count"`
	ApprovedApplications int64 `json:"approved_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	ActiveSchemes        int64 `json:"active_schemes"`
}

type MonthlyPoint struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
	Approvals     int    `json:"approvals"`
}

type DashboardStats struct {
	Stats       Stats          `json:"stats"`
	MonthlyData []MonthlyPoint `json:"monthly_data"`
}

func formatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Farmer expects f.Lands to be loaded; a farmer without lands renders "lands": [].
func Farmer(f models.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:             f.ID,
		Name:           f.Name,
		Village:        f.Village,
		Phone:          f.Phone,
		LandArea:       formatDecimal(f.LandArea),
		DateRegistered: models.FormatDate(f.DateRegistered),
		Lands:          Lands(f.Lands),
	}
}

func Farmers(list []models.Farmer) []FarmerResponse {
	out := make([]FarmerResponse, 0, len(list))
	for _, f := range list {
		out = append(out, Farmer(f))
	}
	return out
}

func Land(l models.Land) LandResponse {
	return LandResponse{
		ID:       l.ID,
		Farmer:   l.FarmerID,
		Location: l.Location,
		Area:     formatDecimal(l.Area),
		SoilType: l.SoilType,
	}
}

func Lands(list []models.Land) []LandResponse {
	out := make([]LandResponse, 0, len(list))
	for _, l := range list {
		out = append(out, Land(l))
	}
	return out
}

func Scheme(s models.Scheme) SchemeResponse {
	return SchemeResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Eligibility: s.Eligibility,
		StartDate:   models.FormatDate(s.StartDate),
		EndDate:     models.FormatDate(s.EndDate),
	}
}

func Schemes(list []models.Scheme) []SchemeResponse {
	out := make([]SchemeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, Scheme(s))
	}
	return out
}

// Application expects a.Farmer and a.Scheme to be preloaded.
func Application(a models.SchemeApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		Farmer:          a.FarmerID,
		Scheme:          a.SchemeID,
		FarmerName:      a.Farmer.Name,
		SchemeName:      a.Scheme.Name,
		ApplicationDate: models.FormatDate(a.ApplicationDate),
		Status:          string(a.Status),
	}
}

func Applications(list []models.SchemeApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, Application(a))
	}
	return out
}

func Feature(f models.Feature) FeatureResponse {
	return FeatureResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		IconName:    f.IconName,
		IconColor:   f.IconColor,
	}
}

func Features(list []models.Feature) []FeatureResponse {
	out := make([]FeatureResponse, 0, len(list))
	for _, f := range list {
		out = append(out, Feature(f))
	}
	return out
}
