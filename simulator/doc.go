// Package simulator plays client taxi calls against a road graph.
//
// Taxis wait at shops. For every call the simulator finds the nearest taxis
// that can drive to the client and the nearest shops the client can be
// driven to, both among the shops of the call's company, then asks a
// Decider whether the driver takes the call. A served call reports each
// route (or only its cost when several equal routes exist) and the amount
// due, summed over every (taxi, shop) pairing under the company's tariff.
//
// Reports are deterministic given a deterministic Decider: candidates are
// visited in ID order and NewRandomDecider accepts a fixed seed.
package simulator
