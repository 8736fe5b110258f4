// Package config loads the rule-set file for the heatpath command.
//
// The file is HCL. Expressions may refer to the dimensions of the loaded
// grid through the variables width and height:
//
//	start       = [0, 0]
//	goal        = [width - 1, height - 1]
//	strict_goal = false
//
//	rules "crucible" {
//	  min_run = 0
//	  max_run = 3
//	}
//
// Every attribute is optional and rules blocks may be omitted; Default
// describes what fills the gaps.
package config
