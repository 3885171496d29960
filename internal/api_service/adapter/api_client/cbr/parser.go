package cbr

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/pkg/errors"
)

// The CBR pages carry no stable ids or labels, so both parsers address values
// by position inside the flattened text of class-selected elements. Every
// offset lives here; a layout change upstream breaks in this file only and
// surfaces as entities.ErrPage.
const (
	dailyTableSelector = "table.data tbody tr"
	dailyCodeSegment   = 2
	dailyUnitSegment   = 3
	dailyRateSegment   = 5

	indicatorBlockSelector = "div.table.key-indicator_table"
	usdSegmentFromStart    = 16
	eurSegmentFromEnd      = 5
	metalsLeadingTrim      = 11
	metalsTrailingTrim     = 4
	metalGroupSize         = 9
	metalPriceOffset       = 3
)

// ParseDailyRates extracts per-currency rates from the daily rates page.
// Each body row after the header holds the char code, the lot size and the
// quoted rate; the stored value is rate divided by lot size. A repeated char
// code keeps the later row.
func ParseDailyRates(page string) (entities.RateTable, error) {
	const op = "cbr.ParseDailyRates"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	rows := doc.Find(dailyTableSelector)
	if rows.Length() < 2 {
		return nil, errors.Wrapf(entities.ErrPage, "%s: daily table missing or has no data rows", op)
	}

	rates := make(entities.RateTable, rows.Length()-1)

	var rowErr error
	rows.Slice(1, rows.Length()).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		segments := strings.Split(row.Text(), "\n")
		if len(segments) <= dailyRateSegment {
			rowErr = errors.Wrapf(entities.ErrPage, "%s: row has only %d segments", op, len(segments))
			return false
		}

		code := strings.TrimSpace(segments[dailyCodeSegment])

		unit, err := strconv.Atoi(strings.TrimSpace(segments[dailyUnitSegment]))
		if err != nil {
			rowErr = errors.Wrapf(entities.ErrPage, "%s: unit %q is not an integer", op, segments[dailyUnitSegment])
			return false
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(segments[dailyRateSegment]), 64)
		if err != nil {
			rowErr = errors.Wrapf(entities.ErrPage, "%s: rate %q is not a number", op, segments[dailyRateSegment])
			return false
		}

		rates[code] = entities.Round8(rate / float64(unit))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rates, nil
}

// ParseKeyIndicators extracts USD/EUR reference rates and precious-metal
// prices from the key indicators page. The first indicator block carries the
// two currency rates at fixed offsets from either end of its text; the second
// one decomposes into 9-segment groups, one per metal, with the code first
// and the comma-grouped price fourth.
func ParseKeyIndicators(page string) (entities.RateTable, error) {
	const op = "cbr.ParseKeyIndicators"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	blocks := doc.Find(indicatorBlockSelector)
	if blocks.Length() < 2 {
		return nil, errors.Wrapf(entities.ErrPage, "%s: want at least 2 indicator blocks, found %d", op, blocks.Length())
	}

	rates := make(entities.RateTable)

	metals := strings.Split(blocks.Eq(1).Text(), "\n")
	if len(metals) < metalsLeadingTrim+metalsTrailingTrim {
		return nil, errors.Wrapf(entities.ErrPage, "%s: metals block has only %d segments", op, len(metals))
	}
	metals = metals[metalsLeadingTrim : len(metals)-metalsTrailingTrim]

	for i := 0; i+metalPriceOffset < len(metals); i += metalGroupSize {
		code := strings.TrimSpace(metals[i])

		raw := strings.ReplaceAll(strings.TrimSpace(metals[i+metalPriceOffset]), ",", "")
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(entities.ErrPage, "%s: metal price %q is not a number", op, raw)
		}

		rates[code] = price
	}

	currencies := strings.Split(blocks.Eq(0).Text(), "\n")
	if len(currencies) <= usdSegmentFromStart || len(currencies) < eurSegmentFromEnd {
		return nil, errors.Wrapf(entities.ErrPage, "%s: currency block has only %d segments", op, len(currencies))
	}

	usd, err := strconv.ParseFloat(strings.TrimSpace(currencies[usdSegmentFromStart]), 64)
	if err != nil {
		return nil, errors.Wrapf(entities.ErrPage, "%s: USD rate is not a number", op)
	}
	eur, err := strconv.ParseFloat(strings.TrimSpace(currencies[len(currencies)-eurSegmentFromEnd]), 64)
	if err != nil {
		return nil, errors.Wrapf(entities.ErrPage, "%s: EUR rate is not a number", op)
	}

	rates["USD"] = usd
	rates["EUR"] = eur

	return rates, nil
}
