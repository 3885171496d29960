package cbr

import (
	"errors"
	"testing"

	"github.com/munraito/asset-web-service/internal/entities"
)

const dailyPage = `<html><body>
<table class="data">
<tr>
<th>Num</th>
<th>Char code</th>
<th>Unit</th>
<th>Currency</th>
<th>Rate</th>
</tr>
<tr>
<td>036</td>
<td>AUD</td>
<td>1</td>
<td>Australian Dollar</td>
<td>55.2501</td>
</tr>
<tr>
<td>051</td>
<td>AMD</td>
<td>100</td>
<td>Armenian Dram</td>
<td>14.1040</td>
</tr>
<tr>
<td>051</td>
<td>AMD</td>
<td>100</td>
<td>Armenian Dram</td>
<td>16.0000</td>
</tr>
<tr>
<td>840</td>
<td>USD</td>
<td>978</td>
<td>US Dollar</td>
<td>62.3450</td>
</tr>
</table>
</body></html>`

const indicatorsPage = `<html><body>
<div class="table key-indicator_table">
<div>Key indicators</div>
<div>Exchange rates</div>
<div>rub</div>
<table>
<tr>
<td>Indicator</td>
<td>02.11.2020</td>
<td>03.11.2020</td>
</tr>
<tr>
<td>
<div>US Dollar</div>
<div>USD/RUB</div>
</td>
<td>79.3323</td>
<td>80.0006</td>
</tr>
<tr>
<td>
<div>Euro</div>
<div>EUR/RUB</div>
</td>
<td>92.4302</td>
<td>93.7641</td>
</tr>
</table>
<div>* reference</div>
</div>
<div class="table key-indicator_table">
<div>Precious metals</div>
<table>
<tr>
<th>Code</th>
<th>Metal</th>
<th>02.11.2020</th>
<th>03.11.2020</th>
<th>per gram</th>
</tr>
<tr>
<td>Au</td>
<td>Gold</td>
<td>02.11.2020</td>
<td>4,945.34</td>
<td>03.11.2020</td>
<td>4,958.77</td>
<td>rub/g</td>
</tr>
<tr>
<td>Ag</td>
<td>Silver</td>
<td>02.11.2020</td>
<td>62.03</td>
<td>03.11.2020</td>
<td>62.51</td>
<td>rub/g</td>
</tr>
<tr>
<td>Pt</td>
<td>Platinum</td>
<td>02.11.2020</td>
<td>2,158.14</td>
<td>03.11.2020</td>
<td>2,169.91</td>
<td>rub/g</td>
</tr>
<tr>
<td>Pd</td>
<td>Palladium</td>
<td>02.11.2020</td>
<td>5,667.14</td>
<td>03.11.2020</td>
<td>5,711.66</td>
<td>rub/g</td>
</tr>
</table>
<div>* indicative</div>
</div>
</body></html>`

func TestParseDailyRates(t *testing.T) {
	rates, err := ParseDailyRates(dailyPage)
	if err != nil {
		t.Fatalf("ParseDailyRates: %v", err)
	}

	if len(rates) != 3 {
		t.Errorf("got %d currencies, want 3: %v", len(rates), rates)
	}
	if rates["AUD"] != 55.2501 {
		t.Errorf("AUD = %v, want 55.2501", rates["AUD"])
	}
	if want := entities.Round8(62.3450 / 978); rates["USD"] != want {
		t.Errorf("USD = %v, want %v", rates["USD"], want)
	}
	// later duplicate row wins
	if want := entities.Round8(16.0 / 100); rates["AMD"] != want {
		t.Errorf("AMD = %v, want %v", rates["AMD"], want)
	}
}

func TestParseDailyRatesMalformed(t *testing.T) {
	cases := map[string]string{
		"no table":    `<html><body><p>maintenance</p></body></html>`,
		"header only": `<table class="data"><tr><th>Char code</th></tr></table>`,
		"short row":   `<table class="data"><tr><th>h</th></tr><tr><td>x</td></tr></table>`,
		"bad unit":    dailyBadRow("USD", "one", "62.3450"),
		"bad rate":    dailyBadRow("USD", "1", "n/a"),
		"wrong class": `<table class="stats"><tr><th>h</th></tr><tr><td>a</td></tr></table>`,
	}

	for name, page := range cases {
		if _, err := ParseDailyRates(page); !errors.Is(err, entities.ErrPage) {
			t.Errorf("%s: err = %v, want ErrPage", name, err)
		}
	}
}

func dailyBadRow(code, unit, rate string) string {
	return `<table class="data">
<tr>
<th>h</th>
</tr>
<tr>
<td>840</td>
<td>` + code + `</td>
<td>` + unit + `</td>
<td>name</td>
<td>` + rate + `</td>
</tr>
</table>`
}

func TestParseKeyIndicators(t *testing.T) {
	rates, err := ParseKeyIndicators(indicatorsPage)
	if err != nil {
		t.Fatalf("ParseKeyIndicators: %v", err)
	}

	want := entities.RateTable{
		"USD": 80.0006,
		"EUR": 93.7641,
		"Au":  4945.34,
		"Ag":  62.03,
		"Pt":  2158.14,
		"Pd":  5667.14,
	}

	if len(rates) != len(want) {
		t.Errorf("got %d entries, want %d: %v", len(rates), len(want), rates)
	}
	for code, value := range want {
		if rates[code] != value {
			t.Errorf("%s = %v, want %v", code, rates[code], value)
		}
	}
}

func TestParseKeyIndicatorsMalformed(t *testing.T) {
	cases := map[string]string{
		"no blocks": `<html><body><div class="table">not it</div></body></html>`,
		"one block": `<div class="table key-indicator_table"><p>only one</p></div>`,
		"tiny metals block": `<div class="table key-indicator_table"><p>a</p></div>
<div class="table key-indicator_table"><p>b</p></div>`,
	}

	for name, page := range cases {
		if _, err := ParseKeyIndicators(page); !errors.Is(err, entities.ErrPage) {
			t.Errorf("%s: err = %v, want ErrPage", name, err)
		}
	}
}
