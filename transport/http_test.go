package transport

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
)

func TestParseCarFilterRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *model.CarFilterRequest
	}{
		{
			name:  "defaults when no params given",
			query: "",
			want: &model.CarFilterRequest{
				MinPrice: 0,
				MaxPrice: constant.PriceUnbounded,
				SortBy:   constant.SortByNewest,
				Page:     constant.DefaultPage,
				Limit:    constant.DefaultLimit,
			},
		},
		{
			name:  "full set of params",
			query: "search=civic&make=Honda&bodyType=Sedan&fuelType=Petrol&transmission=Automatic&minPrice=10000&maxPrice=40000&sortBy=priceAsc&page=2&limit=12",
			want: &model.CarFilterRequest{
				Search:       "civic",
				Make:         "Honda",
				BodyType:     "Sedan",
				FuelType:     "Petrol",
				Transmission: "Automatic",
				MinPrice:     10000,
				MaxPrice:     40000,
				SortBy:       constant.SortByPriceAsc,
				Page:         2,
				Limit:        12,
			},
		},
		{
			name:  "unparsable numbers fall back to defaults",
			query: "minPrice=abc&maxPrice=xyz&page=two&limit=many",
			want: &model.CarFilterRequest{
				MinPrice: 0,
				MaxPrice: constant.PriceUnbounded,
				SortBy:   constant.SortByNewest,
				Page:     constant.DefaultPage,
				Limit:    constant.DefaultLimit,
			},
		},
		{
			name:  "non-positive numbers fall back to defaults",
			query: "minPrice=-5&maxPrice=0&page=0&limit=-1",
			want: &model.CarFilterRequest{
				MinPrice: 0,
				MaxPrice: constant.PriceUnbounded,
				SortBy:   constant.SortByNewest,
				Page:     constant.DefaultPage,
				Limit:    constant.DefaultLimit,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}
			got := parseCarFilterRequest(q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseCarFilterRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
