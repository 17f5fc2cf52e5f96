package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// rulesFile is the top-level structure of a rules file:
//
//	rules {
//	  min_bet            = 25
//	  num_decks          = 8
//	  hit_soft_seventeen = true
//	}
type rulesFile struct {
	Rules *rulesBlock `hcl:"rules,block"`
}

// rulesBlock uses pointer fields so that explicit false/zero values in the
// file are distinguishable from absent attributes, which keep defaults.
type rulesBlock struct {
	MinBet           *int     `hcl:"min_bet,optional"`
	Payout           *float64 `hcl:"payout,optional"`
	NumDecks         *int     `hcl:"num_decks,optional"`
	ShoeMinPercent   *float64 `hcl:"shoe_min_percent,optional"`
	HitSoftSeventeen *bool    `hcl:"hit_soft_seventeen,optional"`
	DoubleAfterSplit *bool    `hcl:"double_after_split,optional"`
	LateSurrender    *bool    `hcl:"late_surrender,optional"`
	MaxSplit         *int     `hcl:"max_split,optional"`
}

// LoadOptions reads a rules file and merges it over DefaultOptions. A
// missing file yields the defaults.
func LoadOptions(filename string) (Options, error) {
	opts := DefaultOptions()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return opts, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return opts, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}

	var rf rulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &rf)
	if diags.HasErrors() {
		return opts, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}
	if rf.Rules == nil {
		return opts, nil
	}

	r := rf.Rules
	if r.MinBet != nil {
		opts.MinBet = *r.MinBet
	}
	if r.Payout != nil {
		opts.Payout = *r.Payout
	}
	if r.NumDecks != nil {
		opts.NumDecks = *r.NumDecks
	}
	if r.ShoeMinPercent != nil {
		opts.ShoeMinPercent = *r.ShoeMinPercent
	}
	if r.HitSoftSeventeen != nil {
		opts.HitSoftSeventeen = *r.HitSoftSeventeen
	}
	if r.DoubleAfterSplit != nil {
		opts.DoubleAfterSplit = *r.DoubleAfterSplit
	}
	if r.LateSurrender != nil {
		opts.LateSurrender = *r.LateSurrender
	}
	if r.MaxSplit != nil {
		opts.MaxSplit = *r.MaxSplit
	}

	return opts, nil
}
