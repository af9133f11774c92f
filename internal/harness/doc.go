// Package harness checks puzzle solvers against known answers.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: samples
//	description: "Sample inputs from the puzzle texts"
//	cases:
//	  - day: 5
//	    input: ../inputs/day5.txt
//	    part1: 35
//	    part2: 46
//
// Input paths are relative to the scenario file. A case names at least one
// of part1 and part2; parts without an expectation are not run.
//
// Unknown fields are rejected when decoding, and the decoded scenario is then
// unified with the CUE schema in schema.cue, which bounds day to 1..25 and
// requires a name and at least one case.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/samples.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
//
// Outcomes are listed in case order, part 1 before part 2, so a Result can be
// compared byte for byte against a golden file with RunWithGolden.
package harness
