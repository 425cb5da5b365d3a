package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openvote/go-governance/governance"
	"github.com/openvote/go-governance/repo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func start(ctx *cli.Context) error {
	p, err := getRootPath(ctx)
	if err != nil {
		return err
	}
	r, err := repo.Load(p)
	if err != nil {
		return err
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(r.Config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(r.Config.Log.ReportCaller)

	printVersion()

	engine, err := buildEngine(r.Config)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	events := make(chan governance.Event, 256)
	sub := engine.SubscribeEvents(events)
	go logEvents(logger, events)

	var wg sync.WaitGroup
	wg.Add(1)
	handleShutdown(engine, sub.Unsubscribe, &wg)

	logger.WithFields(logrus.Fields{
		"admin":          engine.Admin().Hex(),
		"quorum_percent": engine.QuorumPercent(),
		"voting_power":   engine.TotalVotingPower(),
	}).Info("govern is ready")

	wg.Wait()

	return nil
}

func buildEngine(cfg *repo.Config) (*governance.Engine, error) {
	if !common.IsHexAddress(cfg.Admin) {
		return nil, fmt.Errorf("invalid admin address %q", cfg.Admin)
	}
	adminAddr := common.HexToAddress(cfg.Admin)

	engine, err := governance.NewEngine(adminAddr, &governance.Config{
		QuorumPercent: cfg.QuorumPercent,
	})
	if err != nil {
		return nil, err
	}

	for _, v := range cfg.Voters {
		if !common.IsHexAddress(v.Address) {
			return nil, fmt.Errorf("invalid voter address %q", v.Address)
		}
		if err := engine.SetVoter(adminAddr, common.HexToAddress(v.Address), v.Weight); err != nil {
			return nil, fmt.Errorf("register voter %s: %w", v.Address, err)
		}
	}

	return engine, nil
}

func logEvents(logger *logrus.Logger, events <-chan governance.Event) {
	for ev := range events {
		switch e := ev.(type) {
		case governance.ProposalCreatedEvent:
			logger.WithFields(logrus.Fields{
				"id": e.ID, "title": e.Title, "proposer": e.Proposer.Hex(),
				"snapshot": e.Snapshot, "quorum_percent": e.QuorumPercent,
			}).Info("proposal created")
		case governance.VoteCastEvent:
			logger.WithFields(logrus.Fields{
				"id": e.ID, "voter": e.Voter.Hex(), "support": e.Support, "weight": e.Weight,
			}).Info("vote cast")
		case governance.ProposalExecutedEvent:
			logger.WithFields(logrus.Fields{
				"id": e.ID, "passed": e.Passed, "for": e.ForVotes, "against": e.AgainstVotes,
			}).Info("proposal executed")
		case governance.ProposalCanceledEvent:
			logger.WithFields(logrus.Fields{"id": e.ID, "by": e.By.Hex()}).Info("proposal canceled")
		case governance.ProposalExtendedEvent:
			logger.WithFields(logrus.Fields{"id": e.ID, "deadline": e.NewDeadline}).Info("proposal extended")
		case governance.VoterUpdatedEvent:
			logger.WithFields(logrus.Fields{
				"voter": e.Address.Hex(), "weight": e.Weight, "removed": e.Removed,
			}).Info("voter updated")
		case governance.AdminTransferredEvent:
			logger.WithFields(logrus.Fields{"old": e.Old.Hex(), "new": e.New.Hex()}).Info("admin transferred")
		default:
			logger.WithField("event", fmt.Sprintf("%#v", ev)).Warn("unknown governance event")
		}
	}
}

func handleShutdown(engine *governance.Engine, unsubscribe func(), wg *sync.WaitGroup) {
	var stop = make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGTERM)
	signal.Notify(stop, syscall.SIGINT)

	go func() {
		<-stop
		fmt.Println("received interrupt signal, shutting down...")
		unsubscribe()
		engine.Stop()
		wg.Done()
		os.Exit(0)
	}()
}
