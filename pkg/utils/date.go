package utils

import (
	"log"
	"sync"
	"time"
)

var (
	kstOnce sync.Once
	kstLoc  *time.Location
)

// GetKstTimeLocation returns the Asia/Seoul location, falling back to a fixed +09:00 zone
// when the tz database is not available in the container.
func GetKstTimeLocation() *time.Location {
	kstOnce.Do(func() {
		loc, err := time.LoadLocation("Asia/Seoul")
		if err != nil {
			log.Println("Failed to load Asia/Seoul location, using fixed KST offset:", err)
			loc = time.FixedZone("KST", 9*60*60)
		}
		kstLoc = loc
	})
	return kstLoc
}

func TimeNowKST() time.Time {
	return time.Now().In(GetKstTimeLocation())
}

// LoadLocation resolves an IANA zone name, defaulting to KST when name is
// empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return GetKstTimeLocation()
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown time zone %q, using KST: %v", name, err)
		return GetKstTimeLocation()
	}
	return loc
}
