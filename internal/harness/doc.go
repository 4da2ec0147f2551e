// Package harness checks puzzle answers against recorded scenarios.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: 2024-06-guard-gallivant
//	description: "Published example for the guard patrol"
//	year: 2024
//	day: 6
//	input: |
//	  ....#.....
//	  ....^....#
//	expect:
//	  - part: 1
//	    answer: "41"
//
// Either input (inline text) or input_file (a path relative to the scenario
// file) supplies the puzzle input. Expectations may name any subset of the
// puzzle's parts; every part still runs and appears in the snapshot.
//
// # Golden Snapshots
//
// A run is summarised as a canonical JSON snapshot (see report.MarshalCanonical)
// holding the computed answer of every part. Snapshots are compared
// byte-for-byte with files under a golden directory, so a change to any
// answer is caught even when the scenario only pins some parts.
//
// Timings never appear in snapshots and puzzles run against a stepping
// clock, so repeated runs are byte-identical.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/2024-06-guard-gallivant.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(catalog.Default(), scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
