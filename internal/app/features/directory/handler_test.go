package directory

import (
	"testing"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
)

func TestRosterTTL(t *testing.T) {
	if rosterTTL != cache.TTLFrequent {
		t.Errorf("roster TTL %v is not the frequent-churn window %v", rosterTTL, cache.TTLFrequent)
	}
	if rosterTTL > 5*time.Minute {
		t.Errorf("roster TTL %v exceeds the 5m staleness bound for member data", rosterTTL)
	}
}
