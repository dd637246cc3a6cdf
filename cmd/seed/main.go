package main

import (
	"log"
	"os"
	"path/filepath"

	"qurocare.com/alms/model"
	"qurocare.com/alms/store"
)

// Writes starter CSV files so the service has something to load.
func main() {
	dir := os.Getenv("ALMS_DATA_DIR")
	if dir == "" {
		dir = "./data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, store.EmployeeFile)); err == nil {
		log.Fatalf("%s already contains %s, refusing to overwrite", dir, store.EmployeeFile)
	}

	st := store.New(dir)
	st.Employees = []model.Employee{
		{Name: "Asha Nair", Passkey: "0423", Email: "asha.nair@qurocare.com", RegisteredID: "QC-101", ActualClockIn: "09:00"},
		{Name: "Ravi Menon", Passkey: "1187", Email: "ravi.menon@qurocare.com", RegisteredID: "QC-102", ActualClockIn: "09:30"},
		{Name: "Priya Das", Passkey: "0032", Email: "priya.das@qurocare.com", RegisteredID: "QC-103", ActualClockIn: "08:45"},
	}

	if err := st.SaveEmployees(); err != nil {
		log.Fatal(err)
	}
	if err := st.SaveAttendance(); err != nil {
		log.Fatal(err)
	}
	if err := st.SaveLeaves(); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %s with %d employees", dir, len(st.Employees))
}
