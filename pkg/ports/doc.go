/*
Package ports defines the driven ports (interfaces) of the Wayfarer engine.

These interfaces decouple the planning core from external collaborators:
the candidate catalog (where flight/hotel/activity options come from) and
the itinerary composer (the text-generation service). The core never knows
whether candidates come from fixtures, a cache, or a live API, nor which
model produces the prose.
*/
package ports
