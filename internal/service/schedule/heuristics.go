package schedule

import (
	"fmt"
	"math"
	"sort"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
)

// checkHeuristics scores the proposal's soft rules. Warnings never block.
func (s *ScheduleServiceImpl) checkHeuristics(slots []proposedSlot, rotation bool) []string {
	var warnings []string
	warnings = append(warnings, s.coverageWarnings(slots)...)
	warnings = append(warnings, fairnessWarnings(slots)...)
	if rotation {
		warnings = append(warnings, rotationWarnings(slots)...)
	}
	return warnings
}

// coverageWarnings checks the per-clinic per-day headcount floor for every
// clinic referenced anywhere in the week.
func (s *ScheduleServiceImpl) coverageWarnings(slots []proposedSlot) []string {
	headcount := make(map[string]map[string]int) // clinic -> day -> doctors
	clinicSet := make(map[string]bool)
	for _, slot := range slots {
		clinicSet[slot.ClinicID] = true
		if headcount[slot.ClinicID] == nil {
			headcount[slot.ClinicID] = make(map[string]int)
		}
		headcount[slot.ClinicID][slot.Day]++
	}

	clinics := make([]string, 0, len(clinicSet))
	for c := range clinicSet {
		clinics = append(clinics, c)
	}
	sort.Strings(clinics)

	var warnings []string
	for _, clinic := range clinics {
		for _, day := range schedule.WeekdayKeys {
			if headcount[clinic][day] < s.cfg.MinClinicCoverage {
				warnings = append(warnings, fmt.Sprintf(
					"clinic %s has %d assignments on %s, below the minimum of %d",
					clinic, headcount[clinic][day], day, s.cfg.MinClinicCoverage,
				))
			}
		}
	}
	return warnings
}

// fairnessWarnings compares each doctor's weekly shift count against the
// mean (deviation above 20%) and the spread (max/min ratio above 1.5).
func fairnessWarnings(slots []proposedSlot) []string {
	counts := make(map[string]int)
	for _, slot := range slots {
		counts[slot.DoctorID]++
	}
	if len(counts) == 0 {
		return nil
	}

	doctors := make([]string, 0, len(counts))
	total := 0
	for doctorID, n := range counts {
		doctors = append(doctors, doctorID)
		total += n
	}
	sort.Strings(doctors)
	mean := float64(total) / float64(len(counts))

	var warnings []string
	for _, doctorID := range doctors {
		deviation := math.Abs(float64(counts[doctorID])-mean) / mean
		if deviation > 0.2 {
			warnings = append(warnings, fmt.Sprintf(
				"doctor %s has %d shifts against a mean of %.1f (%.0f%% deviation)",
				doctorID, counts[doctorID], mean, deviation*100,
			))
		}
	}

	if len(counts) > 1 {
		minCount, maxCount := counts[doctors[0]], counts[doctors[0]]
		for _, doctorID := range doctors {
			if counts[doctorID] < minCount {
				minCount = counts[doctorID]
			}
			if counts[doctorID] > maxCount {
				maxCount = counts[doctorID]
			}
		}
		if float64(maxCount)/float64(minCount) > 1.5 {
			warnings = append(warnings, fmt.Sprintf(
				"shift spread is unbalanced, busiest doctor has %d shifts and the least busy %d",
				maxCount, minCount,
			))
		}
	}
	return warnings
}

// rotationWarnings flags doctors whose rest days cluster into a run of three
// or more consecutive days within the week.
func rotationWarnings(slots []proposedSlot) []string {
	working := make(map[string]map[string]bool) // doctor -> day
	for _, slot := range slots {
		if working[slot.DoctorID] == nil {
			working[slot.DoctorID] = make(map[string]bool)
		}
		working[slot.DoctorID][slot.Day] = true
	}

	doctors := make([]string, 0, len(working))
	for doctorID := range working {
		doctors = append(doctors, doctorID)
	}
	sort.Strings(doctors)

	var warnings []string
	for _, doctorID := range doctors {
		run, longest := 0, 0
		for _, day := range schedule.WeekdayKeys {
			if working[doctorID][day] {
				run = 0
				continue
			}
			run++
			if run > longest {
				longest = run
			}
		}
		if longest >= 3 {
			warnings = append(warnings, fmt.Sprintf(
				"doctor %s has %d consecutive rest days, rotation expects them spread out",
				doctorID, longest,
			))
		}
	}
	return warnings
}
