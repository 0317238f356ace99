package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"swarmtrack/pkg/checkin"
	"swarmtrack/pkg/ui"
)

// interactiveResultCap bounds how many search results a prompt query lists
const interactiveResultCap = 25

// runInteractive starts a prompt loop over the downloaded dataset. Bare
// commands run reports and take an optional year; anything else is parsed
// as filter tokens plus free text.
func runInteractive(list []checkin.Checkin) error {
	ui.PrintHeader("SWARMTRACK")
	fmt.Printf("%d checkins loaded. Type %s for commands, %s to leave.\n\n",
		len(list), ui.Bold("help"), ui.Bold("quit"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(ui.Cyan("> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		command := strings.ToLower(tokens[0])

		switch command {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			printInteractiveHelp()
			continue
		case "stats", "venues", "timeline", "categories", "restaurants", "recent":
			scoped := list
			// commands take an optional year, e.g. "stats 2023"
			if len(tokens) > 1 {
				if year, err := strconv.Atoi(tokens[1]); err == nil {
					scoped = checkin.Filter{Year: year}.Apply(list)
				}
			}
			switch command {
			case "stats":
				reportStats(scoped)
			case "venues":
				reportVenues(scoped, 20)
			case "timeline":
				reportTimeline(scoped)
			case "categories":
				reportCategories(scoped, 20)
			case "restaurants":
				reportRestaurants(scoped)
			case "recent":
				reportRecent(scoped, 10)
			}
			continue
		}

		filter, terms := parseQuery(tokens)
		var matched []checkin.Checkin
		if filter.IsZero() {
			matched = checkin.SearchText(list, terms)
		} else {
			// with structured filters, leftover text narrows by venue
			if terms != "" {
				filter.Venue = terms
			}
			matched = filter.Apply(list)
		}
		reportSearch(matched, interactiveResultCap, "Add filters to narrow the results.")
	}
}

// parseQuery parses filter tokens in the "key value" style (year 2023,
// month 12, city irvine, state CA, cat sushi). cat consumes the rest of
// the line; unrecognized tokens become free text.
func parseQuery(tokens []string) (checkin.Filter, string) {
	var filter checkin.Filter
	var terms []string

	i := 0
	for i < len(tokens) {
		t := strings.ToLower(tokens[i])
		switch {
		case t == "year" && i+1 < len(tokens):
			if n, err := strconv.Atoi(tokens[i+1]); err == nil {
				filter.Year = n
				i += 2
				continue
			}
		case t == "month" && i+1 < len(tokens):
			if n, err := strconv.Atoi(tokens[i+1]); err == nil && n >= 1 && n <= 12 {
				filter.Month = n
				i += 2
				continue
			}
		case t == "city" && i+1 < len(tokens):
			filter.City = tokens[i+1]
			i += 2
			continue
		case t == "state" && i+1 < len(tokens):
			filter.State = tokens[i+1]
			i += 2
			continue
		case t == "cat" && i+1 < len(tokens):
			filter.Category = strings.Join(tokens[i+1:], " ")
			i = len(tokens)
			continue
		}
		terms = append(terms, tokens[i])
		i++
	}

	return filter, strings.Join(terms, " ")
}

func printInteractiveHelp() {
	fmt.Println(ui.Bold("Quick search:"))
	fmt.Println("  Just type a venue name, city, or category to search across all fields.")
	fmt.Println()
	fmt.Println(ui.Bold("Filters (can combine):"))
	fmt.Println("  year YYYY      filter by year           (e.g. year 2019)")
	fmt.Println("  month N        filter by month 1-12     (e.g. month 12)")
	fmt.Println("  city NAME      filter by city           (e.g. city irvine)")
	fmt.Println("  state XX       filter by state          (e.g. state CA)")
	fmt.Println("  cat NAME       filter by category       (e.g. cat sushi)")
	fmt.Println()
	fmt.Println(ui.Bold("Commands (optional year argument):"))
	fmt.Println("  stats          overall statistics")
	fmt.Println("  venues         most visited venues")
	fmt.Println("  timeline       checkins per year, month, and weekday")
	fmt.Println("  categories     top venue categories")
	fmt.Println("  restaurants    dining and drinking breakdown")
	fmt.Println("  recent         latest checkins")
	fmt.Println("  quit           leave")
	fmt.Println()
}
