package config

// Default returns the built-in configuration. The era tables encode rough
// minimums for what a genuine photo or video of that period should look like;
// anything smaller is suspect.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		Health: Health{
			PhotoEras: []Era{
				{MaxYear: 1995, Label: "Legacy/Thumbnail (Pre-1995)", MinBytes: 2048, MinWidth: 160, MinHeight: 120},
				{MaxYear: 2000, Label: "Legacy Photo (Pre-2000)", MinBytes: 5120, MinWidth: 320, MinHeight: 240},
				{MaxYear: 2006, Label: "Early Digital (Pre-2006)", MinBytes: 51200, MinWidth: 640, MinHeight: 480},
				{MaxYear: 2012, Label: "Point & Shoot (Pre-2012)", MinBytes: 204800, MinWidth: 1024, MinHeight: 768},
				{MaxYear: 2018, Label: "Modern Mobile (Pre-2018)", MinBytes: 512000, MinWidth: 1920, MinHeight: 1080},
				{MaxYear: 0, Label: "High Res/4K (2018+)", MinBytes: 1048576, MinWidth: 3840, MinHeight: 2160},
			},
			VideoEras: []Era{
				{MaxYear: 1995, Label: "Cinepak/Old web (Pre-1995)", MinBytes: 25600, MinWidth: 160, MinHeight: 120},
				{MaxYear: 2000, Label: "Legacy Video (Pre-2000)", MinBytes: 102400, MinWidth: 320, MinHeight: 240},
				{MaxYear: 2007, Label: "DVD/Standard Def (Pre-2007)", MinBytes: 5242880, MinWidth: 720, MinHeight: 480},
				{MaxYear: 2012, Label: "Early HD (Pre-2012)", MinBytes: 20971520, MinWidth: 1280, MinHeight: 720},
				{MaxYear: 2017, Label: "Full HD Standard (Pre-2017)", MinBytes: 52428800, MinWidth: 1920, MinHeight: 1080},
				{MaxYear: 0, Label: "4K Standard (2017+)", MinBytes: 209715200, MinWidth: 3840, MinHeight: 2160},
			},
		},
	}
}
