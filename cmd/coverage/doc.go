/*Command coverage loads sets of closed integer intervals and reports their
  merged coverage, and solves the sensor/beacon exclusion puzzle on top of it.

  Usage:
    coverage cover [-half-open] [-gaps] [-clip=lo-hi] path
    coverage checksum [-half-open] path...
    coverage sensors [-row=2000000] [-max=4000000] [-parallelism=0] path

  Paths may be local or s3://, and may be gzip-compressed (.gz).
*/
package main
