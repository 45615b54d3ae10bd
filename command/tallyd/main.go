// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/tallyledger/tallyd/balance"
	"github.com/tallyledger/tallyd/coin"
	"github.com/tallyledger/tallyd/event"
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/ownership"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// currency marker for the demonstration scenario
type credit struct{}

// event kind for the demonstration settlement step
const eventSettlementResolved = "settlement.resolved"

// settlementResolved - payload: value moved between coins with the
// circulating total untouched
type settlementResolved struct {
	Into        string `json:"into"`
	Amount      uint64 `json:"amount"`
	TotalSupply uint64 `json:"total_supply"`
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "tallyd"
	app.Usage = "conservation ledger demonstration node"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "run a scripted currency and ownership scenario against the store",
			Action: runDemo,
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// one transaction's worth of scripted activity: create a currency,
// mint and split coins, record ownership transitions, then report
func runDemo(c *cli.Context) error {

	configFile := c.GlobalString("config-file")
	if "" == configFile {
		return fmt.Errorf("missing config-file option")
	}

	options, err := getConfiguration(configFile)
	if nil != err {
		return err
	}

	if err := logger.Initialise(options.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	policy, err := ownership.ParsePolicy(options.SharePolicy)
	if nil != err {
		return err
	}

	store, err := storage.New(options.Database)
	if nil != err {
		return err
	}
	defer store.Close()

	if err := store.Begin(); nil != err {
		return err
	}

	summary, err := runScenario(store, policy)
	if nil != err {
		store.Abort()
		return err
	}

	if err := store.Commit(); nil != err {
		return err
	}

	report, err := json.MarshalIndent(summary, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", report)
	return nil
}

type coinReport struct {
	Id    string `json:"id"`
	Value uint64 `json:"value"`
}

type scenarioReport struct {
	Treasury    string        `json:"treasury"`
	TotalSupply uint64        `json:"total_supply"`
	Coins       []coinReport  `json:"coins"`
	Asset       string        `json:"asset"`
	AssetStatus string        `json:"asset_status"`
	Events      []event.Event `json:"events"`
	Dropped     uint64        `json:"dropped_events"`
}

func runScenario(store storage.Store, policy ownership.SharePolicy) (*scenarioReport, error) {

	sender := demoAddress("treasurer")
	recipient := demoAddress("recipient")

	digest := sha3.Sum256([]byte("demo transaction"))
	ctx, err := transaction.NewContext(sender, 1, digest[:])
	if nil != err {
		return nil, err
	}

	registry := ownership.NewRegistry(store, policy)

	// one-time claim of the credit currency
	w, err := balance.NewWitness[credit]()
	if nil != err {
		return nil, err
	}

	treasury, err := coin.CreateCurrency(ctx, w, 2, "CRD")
	if nil != err {
		return nil, err
	}

	minted, err := treasury.Mint(ctx, 100_00)
	if nil != err {
		return nil, err
	}

	change, err := minted.Split(ctx, 40_00)
	if nil != err {
		return nil, err
	}

	// settlement: a freshly minted bounty is folded into the change
	// coin; the join moves value without creating or destroying any
	bounty, err := treasury.Mint(ctx, 10_00)
	if nil != err {
		return nil, err
	}
	moved := bounty.Value()
	if err := change.Join(ctx, store, bounty); nil != err {
		return nil, err
	}
	event.Send(eventSettlementResolved, settlementResolved{
		Into:        change.Id().String(),
		Amount:      moved,
		TotalSupply: treasury.TotalSupply(),
	})

	// an unrelated asset: transferred away then frozen in place
	asset := object.New(ctx)
	if err := registry.Transfer(asset, recipient); nil != err {
		return nil, err
	}
	if err := registry.Freeze(asset); nil != err {
		return nil, err
	}

	record, _ := registry.StatusOf(asset.Id())

	report := &scenarioReport{
		Treasury:    treasury.Id().String(),
		TotalSupply: treasury.TotalSupply(),
		Coins: []coinReport{
			{Id: minted.Id().String(), Value: minted.Value()},
			{Id: change.Id().String(), Value: change.Value()},
		},
		Asset:       asset.Id().String(),
		AssetStatus: record.Status.String(),
		Dropped:     event.DroppedCount(),
	}

drain:
	for {
		select {
		case e := <-event.Chan():
			report.Events = append(report.Events, e)
		default:
			break drain
		}
	}

	return report, nil
}

func demoAddress(name string) transaction.Address {
	return transaction.Address(sha3.Sum256([]byte("tallyd demo: " + name)))
}
