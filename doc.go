/*
Package wayfarer is a deterministic trip-planning engine built as an
explicit finite-state machine with controlled side-effects.

Given a destination, budget, duration and preferences, the planner decides
whether the budget is feasible, selects a flight and a hotel from a
candidate catalog, optionally filters activities, and produces exactly one
of: a day-by-day itinerary, a set of budget alternatives, or an error
description. All branching lives in one pure transition function; every
stage contributes an immutable patch to the trip state, so a run is
reproducible for a fixed catalog.

# Concept

The engine core is hexagonal: candidate options come in through a Catalog
port (fixture files, a Redis-cached decorator, or anything else that
implements it), and itinerary prose goes out through a Composer port (an
LLM-backed adapter ships in this repo). When the composer fails or is
absent, a deterministic fallback template lists the same facts; a planning
run never fails because of it.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/wayfarer"
		"github.com/aretw0/wayfarer/pkg/domain"
	)

	func main() {
		// Initialize with a catalog directory (one document per destination).
		planner, err := wayfarer.New("./catalog")
		if err != nil {
			log.Fatal(err)
		}

		state, err := planner.Plan(context.Background(), domain.TripRequest{
			Destination: "Paris, France",
			Budget:      3000,
			Duration:    5,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(state.Outcome())
	}

The zero-value setup uses no external text generation; wire an LLM with
WithComposer and the adapter in internal/adapters/llm via the CLI, or any
ports.Composer of your own.
*/
package wayfarer
