// Command mazepath validates ASCII mazes and marks their shortest path.
//
// 🚀 What is mazepath?
//
//	A small, single-threaded pipeline over a text grid:
//		• grid:     parse '#', 'X' and ' ' into a rectangle of tiles
//		• validate: six structural rules on the wall skeleton
//		• bfs:      4-neighbour breadth-first search, path marked with 'o'
//		• render:   trimmed text output, optional PNG
//
// ✨ Why mazepath?
//
//   - Deterministic – fixed neighbour order, so ties always resolve the same way
//   - Diagnosable  – every rejection names the rule and the row, column or cell
//   - Scriptable   – exit status 1 on any failure, YAML report on request
//
// Usage:
//
//	mazepath check INPUT_FILE [--format text|yaml]
//	mazepath solve INPUT_FILE OUTPUT_FILE [--png IMAGE]
//	mazepath version
//
// Quick ASCII example:
//
//	##X###        ##o###
//	#    #   →    # oo #
//	#    #        #  o #
//	###X##        ###o##
//
//	go install github.com/katalvlaran/mazepath@latest
package main
