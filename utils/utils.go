package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTraineeID generates a human-readable trainee code, e.g. "NHIS/T/4821".
func GenerateTraineeID() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("NHIS/T/%d", 1000+rng.Intn(9000))
}
