package views

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/models"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
)

const (
	productDemandSize   = 6
	recentForecastsSize = 5
	unknownProductName  = "Unknown Product"
)

type ForecastFilter struct {
	Product string `form:"product"`
	Range   int    `form:"range"`
}

type Forecasting struct {
	repos store.Repositories

	forecasts []models.DemandForecast
	products  []models.Product
	status    Status
}

func NewForecasting(repos store.Repositories) *Forecasting {
	return &Forecasting{repos: repos}
}

func (v *Forecasting) Load(ctx context.Context) Status {
	var (
		forecasts []models.DemandForecast
		products  []models.Product
	)
	err := loadAll(ctx,
		listInto[models.DemandForecast](v.repos.Forecasts, &forecasts),
		listInto[models.Product](v.repos.Products, &products),
	)
	v.status = settle("forecasting", err)
	if err != nil {
		v.forecasts, v.products = nil, nil
		return v.status
	}
	v.forecasts, v.products = forecasts, products
	return v.status
}

type ForecastMetrics struct {
	AverageConfidence    float64 `json:"averageConfidence"`
	TotalPredictedDemand float64 `json:"totalPredictedDemand"`
	HighConfidence       int     `json:"highConfidence"`
	LowConfidence        int     `json:"lowConfidence"`
}

func (v *Forecasting) Metrics() ForecastMetrics {
	var m ForecastMetrics
	var confidence float64
	for _, f := range v.forecasts {
		confidence += f.ConfidenceLevel
		m.TotalPredictedDemand += f.PredictedDemandQuantity
		if f.IsHighConfidence() {
			m.HighConfidence++
		}
		if f.IsLowConfidence() {
			m.LowConfidence++
		}
	}
	if len(v.forecasts) > 0 {
		m.AverageConfidence = confidence / float64(len(v.forecasts))
	}
	return m
}

type ProductDemand struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Demand     float64 `json:"demand"`
	Confidence float64 `json:"confidence"`
	Forecasts  int     `json:"forecasts"`
}

// ProductDemand averages the forecasts of the first six products by name. Products without forecasts show zero.
func (v *Forecasting) ProductDemand() []ProductDemand {
	type totals struct {
		demand, confidence float64
		count              int
	}
	byProduct := make(map[string]*totals)
	for _, f := range v.forecasts {
		t, ok := byProduct[f.ProductID]
		if !ok {
			t = &totals{}
			byProduct[f.ProductID] = t
		}
		t.demand += f.PredictedDemandQuantity
		t.confidence += f.ConfidenceLevel
		t.count++
	}

	byName := sortedCopy(v.products, func(a, b models.Product) bool {
		return strings.ToLower(a.ProductName) < strings.ToLower(b.ProductName)
	})
	out := []ProductDemand{}
	for _, p := range firstN(byName, productDemandSize) {
		d := ProductDemand{ProductID: p.ID, Name: p.ProductName}
		if t, ok := byProduct[p.ID]; ok && t.count > 0 {
			d.Demand = t.demand / float64(t.count)
			d.Confidence = t.confidence / float64(t.count)
			d.Forecasts = t.count
		}
		out = append(out, d)
	}
	return out
}

type ForecastItem struct {
	models.DemandForecast
	ProductName string `json:"productName"`
}

// RecentForecasts returns the five most recently generated forecasts
func (v *Forecasting) RecentForecasts() []ForecastItem {
	newest := sortedCopy(v.forecasts, func(a, b models.DemandForecast) bool {
		return a.ForecastGeneratedDate.After(b.ForecastGeneratedDate)
	})
	return v.items(firstN(newest, recentForecastsSize))
}

// Filter narrows forecasts to one product id; "all" or empty keeps every forecast
func (v *Forecasting) Filter(f ForecastFilter) []ForecastItem {
	matched := []models.DemandForecast{}
	for _, fc := range v.forecasts {
		if isAll(f.Product) || fc.ProductID == strings.TrimSpace(f.Product) {
			matched = append(matched, fc)
		}
	}
	return v.items(sortedCopy(matched, func(a, b models.DemandForecast) bool {
		return a.ForecastPeriodStartDate.Before(b.ForecastPeriodStartDate)
	}))
}

func (v *Forecasting) items(forecasts []models.DemandForecast) []ForecastItem {
	names := make(map[string]string, len(v.products))
	for _, p := range v.products {
		names[p.ID] = p.ProductName
	}
	items := make([]ForecastItem, 0, len(forecasts))
	for _, f := range forecasts {
		name, ok := names[f.ProductID]
		if !ok {
			name = unknownProductName
		}
		items = append(items, ForecastItem{DemandForecast: f, ProductName: name})
	}
	return items
}

type ForecastingView struct {
	Status          Status            `json:"status"`
	Filter          ForecastFilter    `json:"filter"`
	Metrics         ForecastMetrics   `json:"metrics"`
	ProductDemand   []ProductDemand   `json:"productDemand"`
	RecentForecasts []ForecastItem    `json:"recentForecasts"`
	Forecasts       []ForecastItem    `json:"forecasts"`
	Trend           []MockDemandPoint `json:"trend"`
	TrendIsMock     bool              `json:"trendIsMock"`
}

// View renders the page. The trend chart is seeded per day so reloads within a day agree.
func (v *Forecasting) View(f ForecastFilter) ForecastingView {
	f.Range = TrendRange(f.Range)
	today := now().Truncate(24 * time.Hour)
	rng := rand.New(rand.NewSource(today.Unix()))
	return ForecastingView{
		Status:          v.status,
		Filter:          f,
		Metrics:         v.Metrics(),
		ProductDemand:   v.ProductDemand(),
		RecentForecasts: v.RecentForecasts(),
		Forecasts:       v.Filter(f),
		Trend:           MockDemandSeries(f.Range, today, rng),
		TrendIsMock:     true,
	}
}
