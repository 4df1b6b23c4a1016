package importer

import (
	"fmt"
	"time"
)

// timestampFormat prefixes generated file names so repeated runs never
// collide.
const timestampFormat = "20060102-150405"

// OutputName returns the enriched output file name for an input stem, like
// "20220406-093000_sample_out.txt".
func OutputName(ts time.Time, stem string) string {
	return fmt.Sprintf("%s_%s_out.txt", ts.Format(timestampFormat), stem)
}

// ProcessedName returns the archived name for a consumed workbook, like
// "20220406-093000_sample_inp_processed.xlsx".
func ProcessedName(ts time.Time, stem string) string {
	return fmt.Sprintf("%s_%s_inp_processed.xlsx", ts.Format(timestampFormat), stem)
}
