package main

import "testing"

func TestOverrideFlagsOnlyAppliedWhenSet(t *testing.T) {
	applyOverrideFlags(rootCmd)
	if opts.Overrides.HasMotorYield || opts.Overrides.HasSlideSeen || opts.Overrides.HasDogleg {
		t.Error("no override flags set: overrides should stay inactive")
	}

	if err := rootCmd.Flags().Set("override-yield", "3.5"); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.Flags().Set("override-dls", "0"); err != nil {
		t.Fatal(err)
	}
	applyOverrideFlags(rootCmd)

	if !opts.Overrides.HasMotorYield || opts.Overrides.MotorYield != 3.5 {
		t.Errorf("override-yield flag should activate the yield override, got %+v", opts.Overrides)
	}
	// An explicit zero is a deliberate override
	if !opts.Overrides.HasDogleg || opts.Overrides.Dogleg != 0 {
		t.Errorf("override-dls 0 should still activate the dogleg override, got %+v", opts.Overrides)
	}
	if opts.Overrides.HasSlideSeen {
		t.Error("untouched override-slide-seen flag should stay inactive")
	}
}
