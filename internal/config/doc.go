// Package config loads the optional HCL run configuration.
//
// A file holds global defaults and any number of dataset blocks:
//
//	threshold  = 0.6
//	log_level  = "info"
//	log_format = "text"
//	output     = "text"
//
//	dataset "antibiotics" {
//	  path      = "${config_dir}/Antibiotics.csv"
//	  threshold = 0.7
//	  heatmap   = "antibiotics.png"
//	}
//
// Expressions are evaluated with the variable config_dir (absolute directory of
// the file). Relative dataset and heatmap paths are resolved against it.
package config
