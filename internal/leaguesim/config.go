package leaguesim

import "time"

// Config holds configuration for a league simulation run.
type Config struct {
	Teams     int   // Number of clubs in the league
	SquadSize int   // Players per club
	Seasons   int   // Number of season passes to run
	Seed      int64 // Seed for the bootstrap population
	Verbose   bool  // Enable verbose logging
}

// Stats holds cumulative simulation statistics.
type Stats struct {
	PlayersCreated int
	SeasonsRun     int
	Processed      int
	Developed      int
	Retired        int
	Regens         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
