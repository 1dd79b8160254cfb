package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Anna", "Maria", "Lucia", "Elena", "Paola", "Rita", "Carla", "Giulia",
	"Francesca", "Silvia", "Federica", "Valentina", "Sara", "Chiara", "Laura",
	"Monica", "Daniela", "Rosa", "Teresa", "Marta",
}

var commonSurnames = []string{
	"Piras", "Sanna", "Melis", "Mura", "Loi", "Cocco", "Carta", "Deiana",
	"Orrù", "Fadda", "Floris", "Lai", "Manca", "Meloni", "Porcu", "Serra",
	"Usai", "Zucca", "Pinna", "Atzeni",
}

func GenerateRandomName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonSurnames[rand.Intn(len(commonSurnames))]
}

var digits = "0123456789"

// GenerateUsernameFromName deriva uno username dal nome e cognome:
// minuscolo, punto come separatore e qualche cifra in coda.
func GenerateUsernameFromName(fullName string) string {
	username := strings.ToLower(strings.Join(strings.Fields(fullName), "."))
	username = strings.ReplaceAll(username, "ù", "u")
	username = strings.ReplaceAll(username, "ò", "o")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomOperator(password string, emailDomainName string) (*domain.Operator, error) {
	fullName := GenerateRandomName()
	username := GenerateUsernameFromName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.Operator{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         domain.RoleOperatore,
	}, nil
}

// GenerateRandomStaffMember genera una collaboratrice verosimile per il seed:
// una su cinque e' governante, le altre cameriere con qualche zona di
// padronanza e i flag storici sparsi a caso.
func GenerateRandomStaffMember() *domain.StaffMember {
	m := &domain.StaffMember{
		Name:     GenerateRandomName(),
		Role:     domain.RoleCameriera,
		IsActive: true,

		Professionalita: rand.Intn(6) + 5,
		Esperienza:      rand.Intn(6) + 5,
		TenutaFisica:    rand.Intn(6) + 5,
		Disponibilita:   rand.Intn(6) + 5,
		Empatia:         rand.Intn(6) + 5,
		CapacitaGuida:   rand.Intn(6) + 5,
	}

	if rand.Intn(5) == 0 {
		m.Role = domain.RoleGovernante
		// Le governanti hanno al massimo due zone: e' un vincolo della
		// scheda anagrafica, il motore tollera comunque record fuori regola
		m.Zones = randomZones(rand.Intn(2) + 1)
		return m
	}

	m.Zones = randomZones(rand.Intn(3))
	m.Jolly = len(m.Zones) == 0
	m.PartTime = rand.Intn(4) == 0
	m.Pendolare = rand.Intn(3) == 0
	m.NoSplit = rand.Intn(4) == 0

	return m
}

func randomZones(n int) []string {
	zones := append([]string{}, domain.ZoneList...)
	rand.Shuffle(len(zones), func(i, j int) {
		zones[i], zones[j] = zones[j], zones[i]
	})
	if n > len(zones) {
		n = len(zones)
	}
	return zones[:n]
}

// GenerateRandomTimeStandard genera tempi verosimili attorno ai fallback.
func GenerateRandomTimeStandard(zone string) *domain.TimeStandard {
	ts := domain.DefaultTimeStandard(zone)
	ts.ArrivalIndividual += float64(rand.Intn(21) - 10)
	ts.StayoverIndividual += float64(rand.Intn(11) - 5)
	ts.ArrivalGroup += float64(rand.Intn(11) - 5)
	ts.StayoverGroup += float64(rand.Intn(7) - 3)
	return &ts
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}
