package quotes

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
)

const amfiNavURL = "https://portal.amfiindia.com/spages/NAVAll.txt"

// amfiNAV returns the latest NAV of a mutual fund scheme, matched by
// ISIN against the AMFI daily dump. The dump is a semicolon-separated
// text file:
//
//	Scheme Code;ISIN Div Payout/ISIN Growth;ISIN Div Reinvestment;Scheme Name;Net Asset Value;Date
//
// NAVs update once per business day, so the download goes through the
// day-cached client.
func (c *Client) amfiNAV(ctx context.Context, isin string) (float64, error) {
	isin = strings.ToUpper(strings.TrimSpace(isin))
	if isin == "" {
		return math.NaN(), fmt.Errorf("mutual fund quote requires an ISIN")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, amfiNavURL, nil)
	if err != nil {
		return math.NaN(), err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.dump.Do(req)
	if err != nil {
		return math.NaN(), fmt.Errorf("error retrieving AMFI NAVs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return math.NaN(), fmt.Errorf("cannot http GET AMFI NAVs: %v", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ";")
		if len(fields) < 6 {
			continue // headers and fund-house separators
		}
		if !strings.EqualFold(fields[1], isin) && !strings.EqualFold(fields[2], isin) {
			continue
		}
		nav, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("invalid NAV %q for %s: %w", fields[4], isin, err)
		}
		if nav <= 0 {
			return math.NaN(), fmt.Errorf("empty NAV for %s", isin)
		}
		return nav, nil
	}
	if err := scanner.Err(); err != nil {
		return math.NaN(), err
	}
	return math.NaN(), fmt.Errorf("ISIN %s not found in AMFI NAV dump", isin)
}
