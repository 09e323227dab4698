package fiscal

import (
	"fmt"
	"time"
)

// Quarter is one fiscal quarter period. StartDate is inclusive, EndDate is
// exclusive (first day of the month following the quarter's last month).
type Quarter struct {
	Name      string
	Year      int
	Quarter   int
	StartDate string
	EndDate   string
}

const dateLayout = "2006-01-02"

func QuarterOf(year, quarter int) (Quarter, error) {
	if quarter < 1 || quarter > 4 {
		return Quarter{}, fmt.Errorf("quarter out of range: %d", quarter)
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	return Quarter{
		Name:      fmt.Sprintf("FY%d Q%d", year, quarter),
		Year:      year,
		Quarter:   quarter,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}, nil
}

// QuartersFrom returns the quarterly periods for years consecutive calendar
// years starting at startYear, in (year, quarter) order.
func QuartersFrom(startYear, years int) ([]Quarter, error) {
	if years < 0 {
		return nil, fmt.Errorf("years must be non-negative: %d", years)
	}

	out := make([]Quarter, 0, years*4)
	for year := startYear; year < startYear+years; year++ {
		for quarter := 1; quarter <= 4; quarter++ {
			q, err := QuarterOf(year, quarter)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
	}
	return out, nil
}
