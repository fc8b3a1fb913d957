package constants

import "os"

// TicksPerQuarter is the tick resolution: 480 ticks = one quarter note.
const TicksPerQuarter = 480

// ScoreVersion is the .mozart.json format version written by this engine.
const ScoreVersion = "1.0"

// DefaultVelocity is used for notes created without an explicit velocity.
const DefaultVelocity = 100

func GetDataDir() string {
	path := os.Getenv("MOZART_DATA_PATH")
	if path != "" {
		return path
	}
	return "./scores"
}

func GetPublishBucket() string {
	bucket := os.Getenv("MOZART_BUCKET")
	if bucket == "" {
		panic("MOZART_BUCKET environment variable is not set!")
	}
	return bucket
}

func GetPublishRegion() string {
	region := os.Getenv("MOZART_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}
