package analysis

import (
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/stats"
)

// HubVolumeQuantile marks the busiest origins as hubs: an airport is a hub
// when its departure count reaches the top 20% of the filtered data.
const HubVolumeQuantile = 0.8

// HourlyRow summarizes one scheduled departure hour.
type HourlyRow struct {
	DepHour              int     `json:"dep_hour"`
	MeanArrDelay         float64 `json:"mean_arr_delay"`
	MedianArrDelay       float64 `json:"median_arr_delay"`
	WeatherSharePct      float64 `json:"weather_share_pct"`
	LateAircraftSharePct float64 `json:"late_aircraft_share_pct"`
	Flights              int     `json:"flights"`
}

// HourlySummary aggregates arrival delay and delay-cause shares per
// departure hour, ordered by hour.
func HourlySummary(df dataframe.DataFrame) []HourlyRow {
	hours := columnFloats(df, dataset.ColDepHour)
	if len(hours) == 0 {
		return nil
	}
	arr := columnFloats(df, dataset.ColArrivalDelay)
	weather := columnFloats(df, dataset.ColHasWeatherDelay)
	lateAircraft := columnFloats(df, dataset.ColHasLateAircraftDelay)

	type bucket struct {
		delays       []float64
		weatherHits  int
		aircraftHits int
		flights      int
	}
	buckets := map[int]*bucket{}

	for i, h := range hours {
		hour := int(h)
		b := buckets[hour]
		if b == nil {
			b = &bucket{}
			buckets[hour] = b
		}
		b.flights++
		if i < len(arr) {
			b.delays = append(b.delays, arr[i])
		}
		if i < len(weather) && weather[i] > 0 {
			b.weatherHits++
		}
		if i < len(lateAircraft) && lateAircraft[i] > 0 {
			b.aircraftHits++
		}
	}

	out := make([]HourlyRow, 0, len(buckets))
	for hour, b := range buckets {
		out = append(out, HourlyRow{
			DepHour:              hour,
			MeanArrDelay:         stats.Mean(b.delays),
			MedianArrDelay:       stats.Median(b.delays),
			WeatherSharePct:      100 * float64(b.weatherHits) / float64(b.flights),
			LateAircraftSharePct: 100 * float64(b.aircraftHits) / float64(b.flights),
			Flights:              b.flights,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepHour < out[j].DepHour })
	return out
}

// RankRow is one airline or airport in a delay ranking.
type RankRow struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	AvgDelay float64 `json:"avg_delay"`
	Flights  int     `json:"flights"`
	Hub      bool    `json:"hub,omitempty"`
}

// AirlineRanking ranks airlines by mean arrival delay, worst first.
// Airlines with fewer than minFlights rows are dropped from the ranking.
func AirlineRanking(df dataframe.DataFrame, minFlights, top int) []RankRow {
	return rankByCode(df, dataset.ColAirline, dataset.ColAirlineName, minFlights, top, false)
}

// AirportRanking ranks origin airports by mean arrival delay, worst first,
// and flags hubs (top 20% departure volume within the filtered rows).
func AirportRanking(df dataframe.DataFrame, minFlights, top int) []RankRow {
	return rankByCode(df, dataset.ColOrigin, dataset.ColOriginName, minFlights, top, true)
}

func rankByCode(df dataframe.DataFrame, codeCol, nameCol string, minFlights, top int, flagHubs bool) []RankRow {
	codes := columnStrings(df, codeCol)
	if len(codes) == 0 {
		return nil
	}
	names := columnStrings(df, nameCol)
	arr := columnFloats(df, dataset.ColArrivalDelay)

	type agg struct {
		name   string
		delays []float64
		count  int
	}
	byCode := map[string]*agg{}
	for i, code := range codes {
		a := byCode[code]
		if a == nil {
			a = &agg{}
			byCode[code] = a
		}
		a.count++
		if a.name == "" && i < len(names) {
			a.name = names[i]
		}
		if i < len(arr) {
			a.delays = append(a.delays, arr[i])
		}
	}

	var hubThreshold float64
	if flagHubs {
		counts := make([]float64, 0, len(byCode))
		for _, a := range byCode {
			counts = append(counts, float64(a.count))
		}
		hubThreshold = stats.Quantile(counts, HubVolumeQuantile)
	}

	out := make([]RankRow, 0, len(byCode))
	for code, a := range byCode {
		if a.count < minFlights {
			continue
		}
		name := a.name
		if name == "" {
			name = code // unresolved label falls back to the code
		}
		out = append(out, RankRow{
			Code:     code,
			Name:     name,
			AvgDelay: stats.Mean(a.delays),
			Flights:  a.count,
			Hub:      flagHubs && float64(a.count) >= hubThreshold,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgDelay != out[j].AvgDelay {
			return out[i].AvgDelay > out[j].AvgDelay
		}
		return out[i].Code < out[j].Code
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// RouteRow is one origin-destination pair.
type RouteRow struct {
	Origin      string  `json:"origin"`
	OriginName  string  `json:"origin_name"`
	Dest        string  `json:"dest"`
	DestName    string  `json:"dest_name"`
	AvgArrDelay float64 `json:"avg_arrival_delay"`
	Flights     int     `json:"flights"`
}

// RouteTable ranks routes with at least minFlights flights by mean arrival
// delay, worst first.
func RouteTable(df dataframe.DataFrame, minFlights, top int) []RouteRow {
	origins := columnStrings(df, dataset.ColOrigin)
	dests := columnStrings(df, dataset.ColDestination)
	if len(origins) == 0 || len(dests) == 0 {
		return nil
	}
	originNames := columnStrings(df, dataset.ColOriginName)
	destNames := columnStrings(df, dataset.ColDestinationName)
	arr := columnFloats(df, dataset.ColArrivalDelay)

	type key struct{ origin, dest string }
	type agg struct {
		originName, destName string
		delays               []float64
		count                int
	}
	routes := map[key]*agg{}
	for i := range origins {
		if i >= len(dests) {
			break
		}
		k := key{origins[i], dests[i]}
		a := routes[k]
		if a == nil {
			a = &agg{}
			routes[k] = a
		}
		a.count++
		if a.originName == "" && i < len(originNames) {
			a.originName = originNames[i]
		}
		if a.destName == "" && i < len(destNames) {
			a.destName = destNames[i]
		}
		if i < len(arr) {
			a.delays = append(a.delays, arr[i])
		}
	}

	out := make([]RouteRow, 0, len(routes))
	for k, a := range routes {
		if a.count < minFlights {
			continue
		}
		row := RouteRow{
			Origin:      k.origin,
			OriginName:  fallback(a.originName, k.origin),
			Dest:        k.dest,
			DestName:    fallback(a.destName, k.dest),
			AvgArrDelay: stats.Mean(a.delays),
			Flights:     a.count,
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgArrDelay != out[j].AvgArrDelay {
			return out[i].AvgArrDelay > out[j].AvgArrDelay
		}
		if out[i].Origin != out[j].Origin {
			return out[i].Origin < out[j].Origin
		}
		return out[i].Dest < out[j].Dest
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// HubComparison contrasts hubs with the remaining origins.
type HubComparison struct {
	HubAvgDelay    float64 `json:"hub_avg_delay"`
	NonHubAvgDelay float64 `json:"non_hub_avg_delay"`
	HubFlights     int     `json:"hub_flights"`
	NonHubFlights  int     `json:"non_hub_flights"`
	HubAirports    int     `json:"hub_airports"`
	OK             bool    `json:"ok"`
}

// HubsVsNonHubs splits flights by hub origin and compares mean arrival
// delay between both groups.
func HubsVsNonHubs(df dataframe.DataFrame) HubComparison {
	origins := columnStrings(df, dataset.ColOrigin)
	arr := columnFloats(df, dataset.ColArrivalDelay)
	if len(origins) == 0 || len(arr) == 0 {
		return HubComparison{}
	}

	counts := map[string]int{}
	for _, o := range origins {
		counts[o]++
	}
	volumes := make([]float64, 0, len(counts))
	for _, c := range counts {
		volumes = append(volumes, float64(c))
	}
	threshold := stats.Quantile(volumes, HubVolumeQuantile)

	hubs := map[string]bool{}
	for o, c := range counts {
		if float64(c) >= threshold {
			hubs[o] = true
		}
	}

	var hubDelays, nonHubDelays []float64
	for i, o := range origins {
		if i >= len(arr) {
			break
		}
		if hubs[o] {
			hubDelays = append(hubDelays, arr[i])
		} else {
			nonHubDelays = append(nonHubDelays, arr[i])
		}
	}
	if len(hubDelays) == 0 || len(nonHubDelays) == 0 {
		return HubComparison{}
	}

	return HubComparison{
		HubAvgDelay:    stats.Mean(hubDelays),
		NonHubAvgDelay: stats.Mean(nonHubDelays),
		HubFlights:     len(hubDelays),
		NonHubFlights:  len(nonHubDelays),
		HubAirports:    len(hubs),
		OK:             true,
	}
}

func fallback(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
