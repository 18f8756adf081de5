package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aaroncutress/csa-go/models"
)

const clockLayout = "15:04"

// Formats a journey, one line per leg
func formatJourney(journey *models.Journey) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s (%s, %d changes)\n",
		journey.DepTime().Format(clockLayout),
		journey.ArrTime().Format(clockLayout),
		formatDuration(journey.Duration()),
		journey.Changes())

	for _, leg := range journey.Legs {
		switch leg := leg.(type) {
		case *models.FootLeg:
			if leg.IsTransfer() {
				fmt.Fprintf(&sb, "  change at %s (%s)\n", leg.From.Name, formatDuration(leg.Duration()))
			} else {
				fmt.Fprintf(&sb, "  walk %s -> %s (%s, %.1f km)\n",
					leg.From, leg.To, formatDuration(leg.Duration()), leg.Distance())
			}
		case *models.TransportLeg:
			fmt.Fprintf(&sb, "  %s %s -> %s %s  %s %s towards %s\n",
				leg.Departure.Format(clockLayout), leg.From,
				leg.Arrival.Format(clockLayout), leg.To,
				leg.Vehicle, leg.Route, leg.Destination)
			for _, stop := range leg.Intermediate {
				fmt.Fprintf(&sb, "      %s %s\n", stop.ArrTime.Format(clockLayout), stop.Stop)
			}
		}
	}
	return sb.String()
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
