/*
Package operation implements the migration: planning which files get which rules, rewriting
each file, and totalling the results.

	+-------------+
	|    Plan     |  fixed file order
	+------+------+
	       |
	+------+------+
	|   Runner    |  one job at a time
	+------+------+
	       |
	+------+------+
	|   Updater   |  read, replace, write if changed
	+-------------+

🔄 Flow:
1. Plan resolves every target file against the config.Layout and scopes the rule tables to it
2. Runner hands each job to the Updater, strictly in order
3. Updater reads through status.FileManager, rewrites through text.TextReplacer and writes back
   only when the bytes differ
4. Every update or failure is reported through log.Logger; failures become StatusFailed results
   instead of errors, so the remaining files are still processed

🔍 Example:

	runner, err := operation.NewRunner(logger)
	jobs, err := operation.Plan(config.DefaultLayout())
	summary := runner.Run(ctx, jobs)
*/
package operation
