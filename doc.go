// Package csa computes optimal public transport journeys with the connection
// scan algorithm. A Router builds, for one destination and day, the Pareto
// front of every station; Journeys turns a front back into itineraries.
package csa
