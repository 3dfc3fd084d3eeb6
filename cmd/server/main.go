package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	gormhistory "retailsim/internal/adapter/history/gorm"
	historyinmem "retailsim/internal/adapter/history/inmemory"
	httpadapter "retailsim/internal/adapter/http"
	metricsinmem "retailsim/internal/adapter/metrics/inmemory"
	"retailsim/internal/app/ports"
	"retailsim/internal/app/simulation"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	history := buildHistoryFromEnv()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SimUC: simulation.UseCase{
			Metrics: kpiRecorder,
			History: history,
			Logf:    log.Printf,
			Now:     time.Now,
			NewRand: randFactoryFromEnv(),
		},
		History: history,
		KPI:     kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("RETAILSIM_ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("retailsim server listening on %s", addr)
	s.Spin()
}

func buildHistoryFromEnv() ports.ActivityHistoryRepository {
	dsn := strings.TrimSpace(os.Getenv("RETAILSIM_DB_DSN"))
	if dsn == "" {
		return historyinmem.NewRepo(intEnv("RETAILSIM_HISTORY_LIMIT", historyinmem.DefaultCapacity))
	}

	db, err := gormhistory.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	repo, err := gormhistory.NewRepo(db)
	if err != nil {
		log.Fatalf("prepare activity history: %v", err)
	}
	return repo
}

// randFactoryFromEnv fixes the pricing agent's random source when
// RETAILSIM_SEED is set, which makes repeated runs reproducible.
func randFactoryFromEnv() func() *rand.Rand {
	seed := intEnv("RETAILSIM_SEED", 0)
	if seed == 0 {
		return nil
	}
	return func() *rand.Rand {
		return rand.New(rand.NewSource(int64(seed)))
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
