package seed

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/repository"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"
)

// Colonne obbligatorie del vecchio archivio anagrafica.
var legacyColumns = []string{
	"Nome",
	"Ruolo",
	"Zone_Padronanza",
	"Part_Time",
	"Jolly",
	"Pendolare",
	"Riposo_Pref",
	"Viaggia_Con",
	"Lavora_Bene_Con",
	"Indisp_Spezzato",
}

// SeedLegacyData importa l'anagrafica dal CSV esportato dal vecchio archivio.
// Il file e' un export Excel italiano: separatore punto e virgola, flag
// scritti come SI/NO, zone di padronanza separate da virgola.
func SeedLegacyData(r *repository.Repository) {
	file, err := os.Open("./internal/seed/data/anagrafica.csv")
	if err != nil {
		slog.Error("apertura del file non riuscita", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'

	headers, err := reader.Read()
	if err != nil {
		slog.Error("lettura dell'intestazione non riuscita", "error", err)
		return
	}

	for _, col := range legacyColumns {
		found := false
		for _, header := range headers {
			if strings.TrimSpace(header) == col {
				found = true
				break
			}
		}
		if !found {
			slog.Error("colonna mancante nell'archivio", "column", col)
			return
		}
	}

	inserted := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("lettura del file non riuscita", "error", err)
			return
		}

		record := make(map[string]string)
		for i, value := range row {
			record[strings.TrimSpace(headers[i])] = strings.TrimSpace(value)
		}

		name := record["Nome"]
		if name == "" {
			slog.Error("riga senza nome, saltata", "record", record)
			continue
		}

		member := &domain.StaffMember{
			Name:             name,
			Role:             domain.StaffRole(record["Ruolo"]),
			Zones:            splitLegacyZones(record["Zone_Padronanza"]),
			PartTime:         legacyFlag(record["Part_Time"]),
			Jolly:            legacyFlag(record["Jolly"]),
			Pendolare:        legacyFlag(record["Pendolare"]),
			RestPreference:   record["Riposo_Pref"],
			CarpoolWith:      record["Viaggia_Con"],
			PreferredPartner: record["Lavora_Bene_Con"],
			NoSplit:          legacyFlag(record["Indisp_Spezzato"]),
			Professionalita:  legacyRating(record["Professionalita"]),
			Esperienza:       legacyRating(record["Esperienza"]),
			TenutaFisica:     legacyRating(record["Tenuta_Fisica"]),
			Disponibilita:    legacyRating(record["Disponibilita"]),
			Empatia:          legacyRating(record["Empatia"]),
			CapacitaGuida:    legacyRating(record["Capacita_Guida"]),
		}

		if err := utils.ValidateStaffMember(member); err != nil {
			slog.Error("scheda fuori regola, saltata", "name", name, "error", err)
			continue
		}

		if err := r.CreateStaffMember(member); err != nil {
			slog.Error("inserimento della collaboratrice non riuscito", "name", name, "error", err)
			continue
		}
		inserted++
	}

	slog.Info("importazione anagrafica completata", "inserted", inserted)
}

func splitLegacyZones(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	zones := make([]string, 0, len(parts))
	for _, p := range parts {
		if z := strings.TrimSpace(p); z != "" {
			zones = append(zones, z)
		}
	}
	return zones
}

// legacyFlag interpreta i flag del vecchio archivio (SI, Sì, X, 1, true).
func legacyFlag(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SI", "SÌ", "S", "X", "1", "TRUE", "VERO":
		return true
	default:
		return false
	}
}

// legacyRating legge un voto 0-10; le celle vuote o illeggibili valgono 0.
func legacyRating(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 10 {
		return 0
	}
	return v
}
