/*
Package domain defines the core value types of the Wayfarer planning engine.

The planner threads a single TripState record through its stages. Each stage
computes a Patch (a delta) that the orchestrator applies to a copy of the
state, so no stage ever mutates another stage's output in place. Candidate
options (flights, hotels, activities) are plain records supplied by a
catalog adapter and are never modified by the core.
*/
package domain
