package leaguesim

import (
	"context"

	"gonum.org/v1/gonum/stat"

	service "github.com/pitchside/careersim/internal/app"
)

// Summary aggregates population-level statistics after a run.
type Summary struct {
	Players         int
	MeanAge         float64
	StdDevAge       float64
	MeanSalary      float64
	StdDevSalary    float64
	MeanMarketValue float64
	TopMarketValue  int
	TopPlayer       string
}

// summarize computes population statistics over the contracted players.
func summarize(ctx context.Context, svc *service.Service) Summary {
	players := svc.Store().Players(ctx, true)
	if len(players) == 0 {
		return Summary{}
	}

	ages := make([]float64, len(players))
	salaries := make([]float64, len(players))
	values := make([]float64, len(players))
	for i, p := range players {
		ages[i] = float64(p.Age)
		salaries[i] = float64(p.Financials.Salary)
		values[i] = float64(p.Financials.MarketValue)
	}

	out := Summary{
		Players:         len(players),
		MeanAge:         stat.Mean(ages, nil),
		StdDevAge:       stat.StdDev(ages, nil),
		MeanSalary:      stat.Mean(salaries, nil),
		StdDevSalary:    stat.StdDev(salaries, nil),
		MeanMarketValue: stat.Mean(values, nil),
	}

	if top := svc.TopValuations(ctx, "", 1); len(top) > 0 {
		out.TopMarketValue = top[0].MarketValue
		out.TopPlayer = top[0].Name
	}
	return out
}
