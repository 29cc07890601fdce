package main

import (
	"flag"
	"log"
	"path/filepath"

	"careervr-be/internal/config"
	"careervr-be/internal/constant"
	"careervr-be/internal/dto"
	"careervr-be/internal/repository/file"
)

func main() {
	reset := flag.Bool("reset", false, "overwrite the VR job catalog with the defaults")
	flag.Parse()

	cfg := config.Load()

	jobs := file.NewJSONStore(filepath.Join(cfg.Storage.DataDir, constant.VRJobsFile), constant.DefaultVRJobs)
	submissions := file.NewJSONStore(filepath.Join(cfg.Storage.DataDir, constant.SubmissionsFile), []dto.Submission{})

	log.Println("Seeding VR job catalog...")

	if *reset {
		if err := jobs.Replace(constant.DefaultVRJobs); err != nil {
			log.Fatal("Error: failed to reset catalog:", err)
		}
		log.Printf("Catalog reset to %d default jobs", len(constant.DefaultVRJobs))
	} else {
		err := jobs.Update(func(existing []dto.VRJob) []dto.VRJob {
			known := make(map[string]struct{}, len(existing))
			for _, j := range existing {
				known[j.Id] = struct{}{}
			}
			for _, j := range constant.DefaultVRJobs {
				if _, ok := known[j.Id]; ok {
					log.Printf("Job '%s' already exists, skipping...", j.Id)
					continue
				}
				existing = append(existing, j)
				log.Printf("Added job: %s (%s)", j.Title, j.Id)
			}
			return existing
		})
		if err != nil {
			log.Fatal("Error: failed to seed catalog:", err)
		}
	}

	if err := submissions.EnsureExists(); err != nil {
		log.Fatal("Error: failed to create submissions file:", err)
	}

	log.Printf("Seeding completed! (%s)", jobs.Path())
}
