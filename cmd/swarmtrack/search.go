package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"swarmtrack/pkg/checkin"
)

// filterFlags holds the structured filter options shared by the query
// subcommands
type filterFlags struct {
	year     int
	month    int
	venue    string
	category string
	city     string
	state    string
	shout    string
	ctype    string
	after    string
	before   string
	near     string
	radius   float64
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().IntVar(&f.year, "year", 0, "filter by year")
	cmd.Flags().IntVar(&f.month, "month", 0, "filter by month (1-12)")
	cmd.Flags().StringVar(&f.venue, "venue", "", "filter by venue name substring")
	cmd.Flags().StringVar(&f.category, "category", "", "filter by category substring")
	cmd.Flags().StringVar(&f.city, "city", "", "filter by city substring")
	cmd.Flags().StringVar(&f.state, "state", "", "filter by state substring")
	cmd.Flags().StringVar(&f.shout, "shout", "", "filter by shout text substring")
	cmd.Flags().StringVar(&f.ctype, "type", "", "filter by checkin type")
	cmd.Flags().StringVar(&f.after, "after", "", "only checkins on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.before, "before", "", "only checkins on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.near, "near", "", "only checkins near \"lat,lng\"")
	cmd.Flags().Float64Var(&f.radius, "radius", 5, "radius in km for --near")
}

// toFilter converts the raw flag values into a checkin.Filter
func (f *filterFlags) toFilter() (checkin.Filter, error) {
	filter := checkin.Filter{
		Year:     f.year,
		Month:    f.month,
		Venue:    f.venue,
		Category: f.category,
		City:     f.city,
		State:    f.state,
		Shout:    f.shout,
		Type:     f.ctype,
		RadiusKm: f.radius,
	}

	if f.after != "" {
		t, err := time.Parse("2006-01-02", f.after)
		if err != nil {
			return filter, fmt.Errorf("invalid --after date %q, want YYYY-MM-DD", f.after)
		}
		filter.After = t
	}
	if f.before != "" {
		t, err := time.Parse("2006-01-02", f.before)
		if err != nil {
			return filter, fmt.Errorf("invalid --before date %q, want YYYY-MM-DD", f.before)
		}
		// inclusive through the end of the day
		filter.Before = t.Add(24*time.Hour - time.Second)
	}
	if f.near != "" {
		coords, err := parseCoordinates(f.near)
		if err != nil {
			return filter, err
		}
		filter.Near = coords
	}

	return filter, nil
}

func parseCoordinates(s string) (*checkin.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid --near value %q, want \"lat,lng\"", s)
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("invalid --near value %q, want \"lat,lng\"", s)
	}
	return &checkin.Coordinates{Lat: lat, Lng: lng}, nil
}

// queryCommand builds one read-only subcommand over the downloaded dataset.
// The filter flags are applied first, then report runs on what is left.
func queryCommand(use, short, long string, report func(list []checkin.Checkin, args []string) error) *cobra.Command {
	flags := &filterFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			list, err := loadCheckins(cfg)
			if err != nil {
				return err
			}

			filter, err := flags.toFilter()
			if err != nil {
				return err
			}
			if !filter.IsZero() {
				list = filter.Apply(list)
			}

			return report(list, args)
		},
	}
	addFilterFlags(cmd, flags)
	return cmd
}

func init() {
	searchCmd := queryCommand("search [query]", "Search your checkins",
		`Search checkins by free text across venue, category, city, shout, and
neighborhood. Structured filters narrow the results further; with no query
and no filters, everything is listed.`,
		func(list []checkin.Checkin, args []string) error {
			if len(args) > 0 {
				list = checkin.SearchText(list, strings.Join(args, " "))
			}
			reportSearch(list, searchLimit, "Use --limit to see more.")
			return nil
		})
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum results to show (0 for all)")
	searchCmd.Example = `  # Every coffee checkin in 2023
  swarmtrack search coffee --year 2023

  # Everything within 5 km of downtown Portland
  swarmtrack search --near "45.5152,-122.6784"`

	statsCmd := queryCommand("stats", "Show overall checkin statistics",
		`Show totals plus yearly, venue, city, and category breakdowns for the
matching checkins.`,
		func(list []checkin.Checkin, args []string) error {
			reportStats(list)
			return nil
		})

	venuesCmd := queryCommand("venues", "Show your most visited venues",
		`Rank venues by number of checkins.`,
		func(list []checkin.Checkin, args []string) error {
			reportVenues(list, topCount)
			return nil
		})
	venuesCmd.Flags().IntVarP(&topCount, "top", "n", 20, "number of venues to show")

	timelineCmd := queryCommand("timeline", "Chart checkins over time",
		`Chart checkins per year and per calendar month.`,
		func(list []checkin.Checkin, args []string) error {
			reportTimeline(list)
			return nil
		})

	categoriesCmd := queryCommand("categories", "Show your top venue categories",
		`Rank venue categories by number of checkins.`,
		func(list []checkin.Checkin, args []string) error {
			reportCategories(list, topCount)
			return nil
		})
	categoriesCmd.Flags().IntVarP(&topCount, "top", "n", 20, "number of categories to show")

	restaurantsCmd := queryCommand("restaurants", "Break down your dining checkins",
		`Show dining and drinking checkins bucketed into coffee, fast food, bars,
bakeries, breweries, and restaurants, with the top venues of each.`,
		func(list []checkin.Checkin, args []string) error {
			reportRestaurants(list)
			return nil
		})

	recentCmd := queryCommand("recent", "Show your most recent checkins",
		`List the most recent checkins, newest first.`,
		func(list []checkin.Checkin, args []string) error {
			reportRecent(list, recentCount)
			return nil
		})
	recentCmd.Flags().IntVarP(&recentCount, "count", "n", 10, "number of checkins to show")

	rootCmd.AddCommand(searchCmd, statsCmd, venuesCmd, timelineCmd,
		categoriesCmd, restaurantsCmd, recentCmd)
}

var (
	searchLimit int
	topCount    int
	recentCount int
)
