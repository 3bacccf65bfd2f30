// Package opal drives a headless Chrome session against the Opal site:
// login, card balance, and the travel-activity fragment. It is the
// pipeline's only upstream I/O; a failure here is fatal to the run and
// never reaches the parsing core.
package opal

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"opaltrack/internal/core"
)

// Element queries on the Opal site. The card query is completed with the
// configured card name at run time.
const (
	usernameXPath      = `//*[@id="usernameCrtl"]`
	passwordXPath      = `//*[@id="passwordCtrl"]`
	cardXPathFmt       = `//*[@id="carousel-inner"]//div[contains(@aria-label, "card named %s")]`
	travelDataXPath    = `//*[@id="tni-opal-activity-tab-content-container"]/div/div/tni-page-frame/div/div/tni-card-activities/div/div[2]`
	activityDatesXPath = `//div[@class='date']`
)

var (
	balanceRe = regexp.MustCompile(`(?i)balance\s*\$([0-9.]+)`)
	pendingRe = regexp.MustCompile(`(?i)pending\s*\$([0-9.]+)`)
)

// Config holds the browser session settings.
type Config struct {
	LoginURL    string
	Username    string
	Password    string
	CardName    string
	ProfileDir  string
	Headless    bool
	WaitTimeout time.Duration
}

// Snapshot is everything one scrape produces for the pipeline.
type Snapshot struct {
	Balance    core.Money
	Pending    core.Money
	TravelHTML string
}

// Collector owns one browser configuration and runs scrape sessions
// against it.
type Collector struct {
	cfg Config
}

func NewCollector(cfg Config) *Collector {
	return &Collector{cfg: cfg}
}

// Collect runs the full session: log in, read the card's aria-label for
// balance and pending amounts, open the card and capture the activity
// container's outer HTML.
func (c *Collector) Collect(ctx context.Context) (Snapshot, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserDataDir(c.cfg.ProfileDir),
		chromedp.WindowSize(1920, 1080),
	)
	if !c.cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	run := func(actions ...chromedp.Action) error {
		runCtx, cancel := context.WithTimeout(browserCtx, c.cfg.WaitTimeout)
		defer cancel()
		return chromedp.Run(runCtx, actions...)
	}

	if err := run(
		chromedp.Navigate(c.cfg.LoginURL),
		chromedp.WaitVisible(passwordXPath, chromedp.BySearch),
		chromedp.SendKeys(usernameXPath, c.cfg.Username, chromedp.BySearch),
		chromedp.SendKeys(passwordXPath, c.cfg.Password+kb.Enter, chromedp.BySearch),
	); err != nil {
		return Snapshot{}, fmt.Errorf("login: %w", err)
	}

	cardXPath := fmt.Sprintf(cardXPathFmt, c.cfg.CardName)
	var ariaLabel string
	var found bool
	if err := run(
		chromedp.WaitVisible(cardXPath, chromedp.BySearch),
		chromedp.AttributeValue(cardXPath, "aria-label", &ariaLabel, &found, chromedp.BySearch),
		chromedp.Click(cardXPath, chromedp.BySearch),
	); err != nil {
		return Snapshot{}, fmt.Errorf("open card %q: %w", c.cfg.CardName, err)
	}

	var travelHTML string
	if err := run(
		chromedp.WaitVisible(travelDataXPath, chromedp.BySearch),
		chromedp.WaitVisible(activityDatesXPath, chromedp.BySearch),
		// The activity list re-renders shortly after it first appears.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML(travelDataXPath, &travelHTML, chromedp.BySearch),
	); err != nil {
		return Snapshot{}, fmt.Errorf("capture travel data: %w", err)
	}

	balance, pending := ExtractBalance(ariaLabel)
	return Snapshot{Balance: balance, Pending: pending, TravelHTML: travelHTML}, nil
}

// ExtractBalance pulls the balance and pending amounts out of the card
// element's aria-label text. Either amount defaults to zero when the
// label does not mention it.
func ExtractBalance(ariaLabel string) (balance, pending core.Money) {
	if m := balanceRe.FindStringSubmatch(ariaLabel); m != nil {
		balance = core.AmountOrZero(m[1])
	}
	if m := pendingRe.FindStringSubmatch(ariaLabel); m != nil {
		pending = core.AmountOrZero(m[1])
	}
	return balance, pending
}
