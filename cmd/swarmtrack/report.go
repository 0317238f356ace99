package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"swarmtrack/pkg/checkin"
	"swarmtrack/pkg/ui"
)

// reportSearch lists matching checkins newest first, showing at most limit
// of them. The hint tells the user how to see the rest.
func reportSearch(list []checkin.Checkin, limit int, hint string) {
	shown := capResults(list, limit)
	for _, c := range shown {
		fmt.Println(ui.FormatCheckin(c))
	}
	if len(shown) < len(list) {
		fmt.Println(ui.Dim(fmt.Sprintf("  Showing %d of %d results. %s", len(shown), len(list), hint)))
	}
	ui.PrintCount(len(list))
}

// capResults truncates list to at most limit entries; zero or negative
// means no cap
func capResults(list []checkin.Checkin, limit int) []checkin.Checkin {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

// reportStats shows totals with yearly, venue, city, and category breakdowns
func reportStats(list []checkin.Checkin) {
	ui.PrintHeader("CHECKIN STATISTICS")
	ui.PrintCount(len(list))
	if len(list) == 0 {
		return
	}

	years := checkin.NewCounter()
	venues := checkin.NewCounter()
	cities := checkin.NewCounter()
	categories := checkin.NewCounter()
	for _, c := range list {
		if c.HasTime() {
			years.Add(strconv.Itoa(c.LocalTime.Year()))
		}
		venues.Add(c.Venue)
		cities.Add(c.City)
		categories.Add(c.Category)
	}

	fmt.Println(ui.Bold("By year:"))
	ui.BarChart(years.TopN(0))

	fmt.Println()
	fmt.Println(ui.Bold("Top venues:"))
	ui.BarChart(venues.TopN(10))

	fmt.Println()
	fmt.Println(ui.Bold("Top cities:"))
	ui.BarChart(cities.TopN(10))

	fmt.Println()
	fmt.Println(ui.Bold("Top categories:"))
	ui.BarChart(categories.TopN(10))
}

// reportVenues ranks venues by checkin count, annotating each with the
// category and city of its latest visit
func reportVenues(list []checkin.Checkin, n int) {
	ui.PrintHeader("MOST VISITED VENUES")
	venues := checkin.NewCounter()
	for _, c := range list {
		venues.Add(c.Venue)
	}
	entries := venues.TopN(n)
	latest := latestByVenue(list)

	details := make([]string, len(entries))
	for i, e := range entries {
		details[i] = venueAnnotation(latest[e.Key])
	}
	ui.RankedBarChart(entries, details)
	ui.PrintCount(len(list))
}

// latestByVenue maps each venue name to its most recent checkin
func latestByVenue(list []checkin.Checkin) map[string]checkin.Checkin {
	latest := make(map[string]checkin.Checkin)
	for _, c := range list {
		if cur, ok := latest[c.Venue]; !ok || c.LocalTime.After(cur.LocalTime) {
			latest[c.Venue] = c
		}
	}
	return latest
}

// venueAnnotation describes a checkin by its short category (full category
// when no short name exists) and city
func venueAnnotation(c checkin.Checkin) string {
	cat := c.CategoryShort
	if cat == "" {
		cat = c.Category
	}
	var parts []string
	if cat != "" {
		parts = append(parts, cat)
	}
	if c.City != "" {
		parts = append(parts, c.City)
	}
	return strings.Join(parts, " · ")
}

// reportTimeline charts checkins per year, then month by month through the
// history, then per day of week. Days are seeded so quiet ones still show
// in order.
func reportTimeline(list []checkin.Checkin) {
	ui.PrintHeader("CHECKIN TIMELINE")

	years := checkin.NewCounter()
	days := checkin.NewCounter()
	days.Seed(dayNames...)

	timed := 0
	for _, c := range list {
		if !c.HasTime() {
			continue
		}
		timed++
		years.Add(strconv.Itoa(c.LocalTime.Year()))
		days.Add(c.LocalTime.Weekday().String())
	}

	fmt.Println(ui.Bold("By year:"))
	ui.BarChart(yearsAscending(years))

	fmt.Println()
	fmt.Println(ui.Bold("By month:"))
	ui.BarChart(monthlyHistory(list))

	fmt.Println()
	fmt.Println(ui.Bold("By day of week:"))
	ui.BarChart(inSeedOrder(days, dayNames))

	ui.PrintCount(timed)
}

// yearsAscending returns the year entries sorted by year, not by count
func yearsAscending(years *checkin.Counter) []checkin.Entry {
	entries := years.TopN(0)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// monthlyHistory counts checkins per calendar month, oldest month first.
// Each year-month gets its own entry, labeled like "June 2023".
func monthlyHistory(list []checkin.Checkin) []checkin.Entry {
	counts := make(map[string]int)
	labels := make(map[string]string)
	var keys []string
	for _, c := range list {
		if !c.HasTime() {
			continue
		}
		key := c.LocalTime.Format("2006-01")
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
			labels[key] = c.LocalTime.Format("January 2006")
		}
		counts[key]++
	}
	sort.Strings(keys)

	entries := make([]checkin.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, checkin.Entry{Key: labels[k], Count: counts[k]})
	}
	return entries
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday"}

// inSeedOrder returns the counter's entries in the given key order
func inSeedOrder(counter *checkin.Counter, keys []string) []checkin.Entry {
	byKey := make(map[string]int, len(keys))
	for _, e := range counter.TopN(0) {
		byKey[e.Key] = e.Count
	}
	entries := make([]checkin.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, checkin.Entry{Key: k, Count: byKey[k]})
	}
	return entries
}

// reportCategories ranks venue categories by checkin count
func reportCategories(list []checkin.Checkin, n int) {
	ui.PrintHeader("TOP CATEGORIES")
	categories := checkin.NewCounter()
	for _, c := range list {
		categories.Add(c.Category)
	}
	ui.BarChart(categories.TopN(n))
	ui.PrintCount(len(list))
}

// reportRestaurants buckets dining checkins and shows top venues per bucket
func reportRestaurants(list []checkin.Checkin) {
	ui.PrintHeader("DINING & DRINKING")

	var dining []checkin.Checkin
	buckets := checkin.NewCounter()
	venuesByBucket := make(map[string]*checkin.Counter)

	for _, c := range list {
		label := checkin.DiningLabel(c.CategoryCode)
		if label == "" {
			continue
		}
		dining = append(dining, c)
		buckets.Add(label)
		if venuesByBucket[label] == nil {
			venuesByBucket[label] = checkin.NewCounter()
		}
		venuesByBucket[label].Add(c.Venue)
	}

	if len(dining) == 0 {
		fmt.Println(ui.Dim("  (no dining checkins)"))
		return
	}

	ui.BarChart(buckets.TopN(0))

	for _, bucket := range buckets.TopN(0) {
		fmt.Println()
		fmt.Println(ui.Bold(bucket.Key + ":"))
		ui.BarChart(venuesByBucket[bucket.Key].TopN(5))
	}

	ui.PrintCount(len(dining))
}

// reportRecent lists the n most recent checkins
func reportRecent(list []checkin.Checkin, n int) {
	ui.PrintHeader("RECENT CHECKINS")
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	for _, c := range list {
		fmt.Println(ui.FormatCheckin(c))
	}
	ui.PrintCount(len(list))
}
