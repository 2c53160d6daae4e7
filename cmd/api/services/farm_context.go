package services

import (
	"context"
	"strconv"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/advisor"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
)

// buildFarmContext assembles the compact context document the advisor
// attaches to prompts. Every lookup is best-effort: a missing or
// failing source leaves its slot empty instead of failing the send.
func (s *ChatService) buildFarmContext(ctx context.Context, farm *models.Farm) *advisor.FarmContext {
	name := farm.Name
	if name == "" {
		name = "My Farm"
	}
	country := farm.CountryCode
	if country == "" {
		country = "unknown"
	}

	fc := &advisor.FarmContext{
		Farm: advisor.ContextFarm{
			Name:     name,
			Location: formatLatLon(farm.Lat, farm.Lon),
			Country:  country,
		},
		RecentScouting:   []advisor.ContextScouting{},
		RecentIrrigation: []advisor.ContextIrrigation{},
		RecentBrix:       []advisor.ContextBrix{},
	}

	if block, err := s.blocks.FindMainBlock(ctx, farm.ID); err == nil {
		fc.Block = &advisor.ContextBlock{
			Name:           block.Name,
			Variety:        block.Variety,
			IrrigationType: block.IrrigationType,
		}
	}

	if st, err := s.status.FindLatest(ctx, farm.ID); err == nil {
		var issues []string
		if st.Cracking {
			issues = append(issues, "cracking")
		}
		if st.Sunburn {
			issues = append(issues, "sunburn")
		}
		if st.MildewSigns {
			issues = append(issues, "mildew")
		}
		if st.BotrytisSigns {
			issues = append(issues, "botrytis")
		}
		if st.PestSigns {
			issues = append(issues, "pests")
		}
		if issues == nil {
			issues = []string{}
		}
		fc.LatestStatus = &advisor.ContextStatus{
			Stage:          st.Stage,
			Brix:           st.SweetnessBrix,
			Issues:         issues,
			LastIrrigation: st.LastIrrigation,
			LastSpray:      st.LastSpray,
			RecordedAt:     isoOrEmpty(st.RecordedAt),
		}
	}

	if logs, err := s.scouting.ListRecent(ctx, farm.ID, 5); err == nil {
		for _, l := range logs {
			fc.RecentScouting = append(fc.RecentScouting, advisor.ContextScouting{
				Issue:      l.IssueType,
				Severity:   l.Severity,
				Notes:      truncate(l.Notes, 100),
				ObservedAt: isoOrEmpty(l.ObservedAt),
				HasPhoto:   l.PhotoPath != "",
			})
		}
	}

	if scan, err := s.scouting.FindLastScan(ctx, farm.ID); err == nil {
		fc.LastScan = &advisor.ContextScan{
			Issue:      scan.IssueType,
			Severity:   scan.Severity,
			Summary:    truncate(scan.Notes, 200),
			ObservedAt: isoOrEmpty(scan.ObservedAt),
		}
	}

	if logs, err := s.irrigation.ListRecent(ctx, farm.ID, 5); err == nil {
		for _, l := range logs {
			fc.RecentIrrigation = append(fc.RecentIrrigation, advisor.ContextIrrigation{
				AmountMM:    l.AmountMM,
				DurationMin: l.DurationMin,
				IrrigatedAt: isoOrEmpty(l.IrrigatedAt),
			})
		}
	}

	if samples, err := s.brix.ListRecent(ctx, farm.ID, 3); err == nil {
		for _, smp := range samples {
			fc.RecentBrix = append(fc.RecentBrix, advisor.ContextBrix{
				Brix:      smp.Brix,
				SampledAt: isoOrEmpty(smp.SampledAt),
			})
		}
	}

	if s.forecasts != nil {
		if forecast, err := s.forecasts.GetForecast(ctx, farm.Lat, farm.Lon, 7); err == nil && len(forecast.Days) > 0 {
			cf := &advisor.ContextForecast{}
			for i, day := range forecast.Days {
				if i >= 7 {
					break
				}
				cf.Next7Days = append(cf.Next7Days, advisor.ContextForecastDay{
					Date:          day.Date,
					TempMax:       deref(day.TempMax),
					TempMin:       deref(day.TempMin),
					Precipitation: deref(day.PrecipitationSum),
				})
			}
			fc.WeatherForecast = cf
		} else if err != nil {
			logger.WarnWithFields("forecast unavailable for chat context", logger.Fields{
				"farm_id": farm.ID,
				"error":   err.Error(),
			})
		}
	}

	return fc
}

func formatLatLon(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64)
}

func isoOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
