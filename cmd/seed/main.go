package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/boo99ooq/forte-village-housekeeping/internal/config"
	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/repository"
	"github.com/boo99ooq/forte-village-housekeeping/internal/seed"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operazione da eseguire (1: operatori casuali, 2: anagrafica casuale, 3: tempi standard casuali, 4: importa anagrafica dal vecchio archivio)")
	flag.IntVar(&n, "n", 5, "numero di record da inserire")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// lettura configurazione
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("impossibile leggere la configurazione", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// pool di connessioni al database
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("impossibile creare il pool di connessioni", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open non apre davvero la connessione, serve un ping esplicito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("impossibile connettersi al database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("nessuna operazione indicata")
	case 1:
		if n <= 0 {
			slog.Error("indicare un numero di operatori valido")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				operator, err := utils.GenerateRandomOperator(cfg.Seed.Operator.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("impossibile generare l'operatore", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateOperator(operator); err != nil {
					slog.Error("impossibile inserire l'operatore", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("operatori inseriti", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("indicare un numero di collaboratrici valido")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				member := utils.GenerateRandomStaffMember()
				if err := repo.CreateStaffMember(member); err != nil {
					slog.Error("impossibile inserire la collaboratrice", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("collaboratrici inserite", slog.Int("count", n-cnt))
		}
	case 3:
		cnt := 0
		for _, zone := range domain.ZoneList {
			ts := utils.GenerateRandomTimeStandard(zone)
			if err := repo.UpsertTimeStandard(ts); err != nil {
				slog.Error("impossibile inserire i tempi standard", slog.String("zone", zone), slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("tempi standard inseriti", slog.Int("count", cnt))
	case 4:
		seed.SeedLegacyData(repo)
	default:
		slog.Error("operazione non valida")
	}
}
