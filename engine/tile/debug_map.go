package tile

const debugLevel = `
####################
#...#..............#
#................###
#...#..........#####
######...........###
#######............#
####...............#
####################
`

// DebugArea is a single level 20x8 test map.
func DebugArea() *Area {
	area, err := ParseLevels([]string{debugLevel})
	if err != nil {
		panic(err)
	}
	return area
}
